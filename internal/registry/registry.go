package registry

// Key identifies a portal module. The set of valid keys is closed: every key
// handed to the access layer must come out of Parse or the registry itself.
type Key string

const (
	KeyDashboard            Key = "dashboard"
	KeyMissionControl       Key = "mission-control"
	KeyKPI                  Key = "kpi"
	KeyGPS                  Key = "gps"
	KeyTasks                Key = "tasks"
	KeyWiki                 Key = "wiki"
	KeyAssets               Key = "assets"
	KeyCalendar             Key = "calendar"
	KeyTraining             Key = "training"
	KeyHR                   Key = "hr"
	KeyAdmin                Key = "admin"
	KeyDecisions            Key = "decisions"
	KeyDealAnalyzer         Key = "deal-analyzer"
	KeyCompTracker          Key = "comp-tracker"
	KeyContractorDirectory  Key = "contractor-directory"
	KeyAppfolioDashboard    Key = "appfolio-dashboard"
	KeyTaxInsurance         Key = "tax-insurance"
	KeyNoteTracker          Key = "note-tracker"
	KeyFlipTracker          Key = "flip-tracker"
	KeyCashflow             Key = "cashflow"
	KeyRehabScope           Key = "rehab-scope"
	KeyLendingCapital       Key = "lending-capital-tracker"
	KeyDocumentVault        Key = "document-vault"
	KeyHealthTracker        Key = "health-tracker"
	KeyHouseManual          Key = "house-manual"
	KeyFamilyManual         Key = "family-manual"
	KeyFlipForecasting      Key = "flip-forecasting-dashboard"
	KeyAutomationEngine     Key = "automation-engine"
)

// Module is one entry of the portal catalog.
type Module struct {
	Key         Key    `json:"key"`
	Label       string `json:"label"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// Registry is the static ordered module catalog. The order matters for
// navigation rendering, so iterate the slice, not the lookup map.
var Registry = []Module{
	{Key: KeyDashboard, Label: "Dashboard", Path: "/dashboard", Description: "Quick links and status"},
	{Key: KeyMissionControl, Label: "Mission Control", Path: "/mission-control", Description: "Ops activity and cron"},
	{Key: KeyKPI, Label: "KPI Tracker", Path: "/kpi", Description: "Company performance metrics"},
	{Key: KeyGPS, Label: "GPS Framework", Path: "/gps", Description: "Goal, Priorities, Standards"},
	{Key: KeyTasks, Label: "Kanban Tasks", Path: "/tasks", Description: "Task boards and cards"},
	{Key: KeyWiki, Label: "Company Wiki", Path: "/wiki", Description: "Knowledge base"},
	{Key: KeyAssets, Label: "Net Worth & Assets", Path: "/assets", Description: "PFS and REO tracker"},
	{Key: KeyCalendar, Label: "Company Calendar", Path: "/calendar", Description: "Team events"},
	{Key: KeyTraining, Label: "Training Hub", Path: "/training", Description: "Learning library"},
	{Key: KeyHR, Label: "HR Links", Path: "/hr", Description: "Hubstaff and Clockify"},
	{Key: KeyAdmin, Label: "Admin Panel", Path: "/admin", Description: "User and access control"},
	{Key: KeyDecisions, Label: "Decision Journal", Path: "/decisions", Description: "Executive decision intelligence"},
	{Key: KeyDealAnalyzer, Label: "Deal Analyzer", Path: "/deal-analyzer", Description: "Underwrite wholesale/flip/rental deals"},
	{Key: KeyCompTracker, Label: "Comp & Market Tracker", Path: "/comp-tracker", Description: "Comparable sales and market trends"},
	{Key: KeyContractorDirectory, Label: "Contractor Directory", Path: "/contractor-directory", Description: "Vendor contacts and performance"},
	{Key: KeyAppfolioDashboard, Label: "Appfolio Dashboard", Path: "/appfolio-dashboard", Description: "Property management snapshot"},
	{Key: KeyTaxInsurance, Label: "Tax & Insurance", Path: "/tax-insurance", Description: "Property obligations and renewals"},
	{Key: KeyNoteTracker, Label: "Note Tracker", Path: "/note-tracker", Description: "Mortgage note portfolio operations"},
	{Key: KeyFlipTracker, Label: "Flip Tracker", Path: "/flip-tracker", Description: "Project-level flip execution tracking"},
	{Key: KeyCashflow, Label: "Cash Flow Tool", Path: "/cashflow", Description: "12/24 month scenario projections"},
	{Key: KeyRehabScope, Label: "Rehab Scope Tracker", Path: "/rehab-scope", Description: "Room-level scope and budgets"},
	{Key: KeyLendingCapital, Label: "Lending & Capital", Path: "/lending-capital-tracker", Description: "Debt exposure and maturities"},
	{Key: KeyDocumentVault, Label: "Document Vault", Path: "/document-vault", Description: "Structured Drive index and search"},
	{Key: KeyHealthTracker, Label: "Health Tracker", Path: "/health-tracker", Description: "Private biometrics and habits"},
	{Key: KeyHouseManual, Label: "House Manual", Path: "/house-manual", Description: "Home systems and maintenance"},
	{Key: KeyFamilyManual, Label: "Family Manual", Path: "/family-manual", Description: "Family playbooks and reminders"},
	{Key: KeyFlipForecasting, Label: "Flip Forecasting", Path: "/flip-forecasting-dashboard", Description: "Flagship financial forecasting"},
	{Key: KeyAutomationEngine, Label: "Automation Engine", Path: "/automation-engine", Description: "Cross-module sync and orchestration"},
}

var byKey = func() map[Key]Module {
	m := make(map[Key]Module, len(Registry))
	for _, entry := range Registry {
		m[entry.Key] = entry
	}
	return m
}()

// Parse validates a raw string against the catalog. Unknown keys are
// rejected here so downstream code only ever sees registered keys.
func Parse(raw string) (Key, bool) {
	key := Key(raw)
	_, ok := byKey[key]
	return key, ok
}

// Lookup returns the catalog entry for a key.
func Lookup(key Key) (Module, bool) {
	entry, ok := byKey[key]
	return entry, ok
}

// IsRegistered reports whether key is part of the catalog.
func IsRegistered(key Key) bool {
	_, ok := byKey[key]
	return ok
}

// Keys returns all module keys in catalog order.
func Keys() []Key {
	keys := make([]Key, len(Registry))
	for i, entry := range Registry {
		keys[i] = entry.Key
	}
	return keys
}
