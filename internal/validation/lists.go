package validation

// Option lists offered by the forms.

var QueryTypes = []string{
	"Document Requirements",
	"Registration Process",
	"Timeline & Fees",
	"Application Status",
	"Legal Advice",
	"Technical Support",
	"Other",
}

var IndianStates = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
	"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka",
	"Kerala", "Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya", "Mizoram",
	"Nagaland", "Odisha", "Punjab", "Rajasthan", "Sikkim", "Tamil Nadu",
	"Telangana", "Tripura", "Uttar Pradesh", "Uttarakhand", "West Bengal",
	"Delhi", "Jammu & Kashmir", "Ladakh",
}

var MaritalStatuses = []string{"Single", "Divorced", "Widowed"}

var Religions = []string{"Hindu", "Muslim", "Christian", "Sikh", "Buddhist", "Jain", "Other"}

// ContactChannel is a preferred mode of response with its display label.
type ContactChannel struct {
	Value string
	Label string
}

var ContactChannels = []ContactChannel{
	{"email", "Email"},
	{"phone", "Phone Call"},
	{"whatsapp", "WhatsApp"},
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
