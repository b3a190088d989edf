package entities

type Vehicle struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// Catalog is the fixed list of rentable vehicles. Order matters: the
// /api/vehicles response returns it as-is.
var Catalog = []Vehicle{
	{Name: "Toyota Corolla", Price: "R500/day"},
	{Name: "Ford Ranger", Price: "R750/day"},
	{Name: "Volkswagen Polo", Price: "R450/day"},
	{Name: "BMW X5", Price: "R1200/day"},
	{Name: "Mercedes S-Class", Price: "R1500/day"},
}

// PaymentMethods are the accepted payment options, matched case-sensitively.
var PaymentMethods = []string{"Bank Transfer", "Credit Card", "Cash on Delivery"}

func IsKnownVehicle(name string) bool {
	for _, v := range Catalog {
		if v.Name == name {
			return true
		}
	}
	return false
}

func IsKnownPaymentMethod(name string) bool {
	for _, m := range PaymentMethods {
		if m == name {
			return true
		}
	}
	return false
}
