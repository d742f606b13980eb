package web

// NavItem is one entry of the advanced-stats sidebar.
type NavItem struct {
	Anchor string
	Label  string
	Active bool
}

var sidebarSections = []NavItem{
	{Anchor: "xg-section", Label: "Análise xG"},
	{Anchor: "passing-section", Label: "Estatísticas de Passes"},
	{Anchor: "defensive-section", Label: "Estatísticas Defensivas"},
	{Anchor: "goal-timing-section", Label: "Tempos dos Gols"},
	{Anchor: "predictions-section", Label: "Previsões de Placar"},
}

// Sidebar returns the sidebar with only anchor marked active. An unknown
// anchor activates the first section.
func Sidebar(anchor string) []NavItem {
	items := make([]NavItem, len(sidebarSections))
	copy(items, sidebarSections)
	return Activate(items, anchor)
}

// Activate clears the active flag on every item and sets it on anchor.
func Activate(items []NavItem, anchor string) []NavItem {
	found := false
	for i := range items {
		items[i].Active = items[i].Anchor == anchor
		found = found || items[i].Active
	}
	if !found && len(items) > 0 {
		items[0].Active = true
	}
	return items
}

const (
	RefreshButtonID    = "refreshStatsBtn"
	refreshButtonClass = "btn btn-sm btn-outline-primary"
)

type Button struct {
	ID     string
	Label  string
	Class  string
	Action string
}

type CardHeader struct {
	Title   string
	Buttons []Button
}

// PageLoad is one render of a page: the view it shows and the element ids
// already placed on it.
type PageLoad struct {
	ID  string
	ids map[string]bool
}

func NewPageLoad(viewID string) *PageLoad {
	return &PageLoad{ID: viewID, ids: make(map[string]bool)}
}

func (p *PageLoad) Has(id string) bool {
	return p.ids[id]
}

// EnsureRefreshControl adds the refresh button to the first card header.
// Nothing happens if the page already has one or that header already
// carries a button. It reports whether the button was added.
func (p *PageLoad) EnsureRefreshControl(headers []CardHeader) bool {
	if p.Has(RefreshButtonID) || len(headers) == 0 {
		return false
	}
	first := &headers[0]
	if len(first.Buttons) > 0 {
		return false
	}

	first.Buttons = append(first.Buttons, Button{
		ID:     RefreshButtonID,
		Label:  "Atualizar",
		Class:  refreshButtonClass,
		Action: "/advanced-stats/refresh",
	})
	p.ids[RefreshButtonID] = true
	return true
}
