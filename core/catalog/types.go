package catalog

// StatusOK is the status value the catalog returns for a successful query.
const StatusOK = "OK"

// TicketRecord is the raw record shape the catalog returns for both kit
// searches and parts lists. Numeric fields arrive as strings and are parsed
// by the consumer.
type TicketRecord struct {
	TicketID        string `json:"ticket_id"`
	ArticleNos      string `json:"ft_article_nos"`
	VariantUUID     string `json:"ft_variant_uuid"`
	Title           string `json:"title"`
	Count           string `json:"ft_count"`
	CategoryAll     string `json:"ft_cat_all"`
	CategoryAllText string `json:"ft_cat_all_formatted"`
	Icon            string `json:"ft_icon"`
}

// SearchResponse is the catalog's response shape for kit searches.
type SearchResponse struct {
	Status  string         `json:"status"`
	Results []TicketRecord `json:"results"`
}

// PartsListResponse is the catalog's response shape for a single parts-list page.
// CPages carries the total page count and is only meaningful on page 1.
type PartsListResponse struct {
	Status  string         `json:"status"`
	CPages  int            `json:"cPages"`
	Results []TicketRecord `json:"results"`
}
