package constant

type PropertyStatus string

const (
	PropertyStatusActive   PropertyStatus = "active"
	PropertyStatusInactive PropertyStatus = "inactive"
	PropertyStatusSold     PropertyStatus = "sold"
)

// Interest types accepted on applications.
const (
	InterestBuy  = "buy"
	InterestRent = "rent"
	InterestSell = "sell"
)
