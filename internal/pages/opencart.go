package pages

import "time"

// Expected values for the OpenCart demo store, shared by the page objects
// and the suites that assert on them.

const (
	LoginPageTitle   = "Account Login"
	AccountPageTitle = "My Account"

	LoginPageURL   = "https://naveenautomationlabs.com/opencart/index.php?route=account/login"
	AccountPageURL = "https://naveenautomationlabs.com/opencart/index.php?route=account/account"

	// RegisterSuccessMessage must match the post-submit header exactly for
	// a registration to count as successful.
	RegisterSuccessMessage = "Your Account Has Been Created!"
)

// Explicit-wait budgets.
const (
	ShortWait  = 5 * time.Second
	MediumWait = 10 * time.Second
	LongWait   = 20 * time.Second
)

var RightColumnLinksBeforeLogin = []string{
	"Login", "Register", "Forgotten Password", "My Account", "Address Book",
	"Wish List", "Order History", "Downloads", "Recurring payments",
	"Reward Points", "Returns", "Transactions", "Newsletter",
}

var RightColumnLinksAfterLogin = []string{
	"My Account", "Edit Account", "Password", "Address Book", "Wish List",
	"Order History", "Downloads", "Recurring payments", "Reward Points",
	"Returns", "Transactions", "Newsletter", "Logout",
}

var AccountHeaders = []string{"My Account", "My Orders", "My Affiliate Account", "Newsletter"}

var FooterSections = []string{"Information", "Customer Service", "Extras", "My Account"}

var FooterLinks = []string{
	"About Us", "Delivery Information", "Privacy Policy", "Terms & Conditions",
	"Contact Us", "Returns", "Site Map", "Brands", "Gift Certificates",
	"Affiliate", "Specials", "My Account", "Order History", "Wish List", "Newsletter",
}

var InformationSectionLinks = []string{
	"About Us", "Delivery Information", "Privacy Policy", "Terms & Conditions",
}

// ProductsInfo holds the expected product detail fixtures.
var ProductsInfo = map[string]map[string]string{
	"MacBook Pro": {
		"Brand":         "Apple",
		"Availability":  "Out Of Stock",
		"productHeader": "MacBook Pro",
		"price":         "$2,000.00",
		"Ex Tax":        "$2,000.00",
		"Product Code":  "Product 18",
		"Reward Points": "800",
	},
	"Samsung Galaxy Tab 10.1": {
		"Availability":  "Pre-Order",
		"productHeader": "Samsung Galaxy Tab 10.1",
		"price":         "$241.99",
		"Ex Tax":        "$199.99",
		"Product Code":  "SAM1",
		"Reward Points": "1000",
	},
	"MacBook Air": {
		"Brand":         "Apple",
		"Availability":  "Out Of Stock",
		"productHeader": "MacBook Air",
		"price":         "$1,202.00",
		"Ex Tax":        "$1,000.00",
		"Product Code":  "Product 17",
		"Reward Points": "800",
	},
}
