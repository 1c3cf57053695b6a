// internal/model/dashboard.go
package model

type DashboardStats struct {
    TotalLeads      int `json:"total_leads"`
    OpenLeads       int `json:"open_leads"`
    InProgressLeads int `json:"in_progress_leads"`
    ConvertedLeads  int `json:"converted_leads"`
}

type MonthlyCount struct {
    Month string `json:"month"`
    Leads int    `json:"leads"`
}

type CarouselSlide struct {
    ImageURL    string `json:"image_url"`
    Title       string `json:"title"`
    Description string `json:"description"`
}

type QuickLink struct {
    Label string `json:"label"`
    Path  string `json:"path"`
}

type FabricatorProfile struct {
    Name       string `json:"name"`
    DatabaseID string `json:"database_id"`
}

type Product struct {
    Name string `json:"name"`
}

type Dashboard struct {
    Profile    FabricatorProfile `json:"profile"`
    Stats      DashboardStats    `json:"stats"`
    Monthly    []MonthlyCount    `json:"monthly"`
    Carousel   []CarouselSlide   `json:"carousel"`
    QuickLinks []QuickLink       `json:"quick_links"`
    LastSync   string            `json:"last_sync"`
}
