package model

// OrderClaim is one claimed order extracted from a submission block,
// already cross-referenced against the order catalog.
type OrderClaim struct {
	Nickname         string
	AccountName      string
	CompletedOrders  string
	OrderDescription string
	Payout           string
	Proof            string
	ProofURL         string
}

// OrderInfo describes a single catalog entry.
type OrderInfo struct {
	Description string
	Payout      string
}

// OrderCatalog maps an order code to its description and payout. The
// table is fixed at process start and read-only; order codes are not
// user-configurable.
var OrderCatalog = map[string]OrderInfo{
	"1":  {Description: "100 Vehicle Thefts", Payout: "$500,000"},
	"2":  {Description: "50 Store Robberies", Payout: "$750,000"},
	"3":  {Description: "15K Arrest Points", Payout: "$2,000,000"},
	"4":  {Description: "200 Drug Deliveries", Payout: "$1,000,000"},
	"5":  {Description: "25 Turf Captures", Payout: "$1,500,000"},
	"6":  {Description: "10K Kill Score", Payout: "$1,250,000"},
	"7":  {Description: "500 Street Races Won", Payout: "$3,000,000"},
	"8":  {Description: "100 Jailbreaks", Payout: "$2,500,000"},
	"9":  {Description: "1K Hours Playtime", Payout: "$5,000,000"},
	"10": {Description: "250 Bank Heists", Payout: "$4,000,000"},
}

// LookupOrder resolves an order code against the catalog.
func LookupOrder(code string) (OrderInfo, bool) {
	info, ok := OrderCatalog[code]
	return info, ok
}
