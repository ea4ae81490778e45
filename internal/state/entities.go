package state

// Entity is any configured object searchable by id and name.
type Entity interface {
	EntityID() string
	EntityName() string
}

// Device is a queryable network device.
type Device struct {
	ID          string
	Name        string
	Address     string
	Platform    string
	Description string
	Directives  []string
}

func (d Device) EntityID() string   { return d.ID }
func (d Device) EntityName() string { return d.Name }

// Directive is a query directive devices can execute.
type Directive struct {
	ID          string
	Name        string
	Description string
	Rules       []string
}

func (d Directive) EntityID() string   { return d.ID }
func (d Directive) EntityName() string { return d.Name }

// PluginType distinguishes input validation plugins from output
// transformation plugins.
type PluginType string

const (
	PluginInput  PluginType = "input"
	PluginOutput PluginType = "output"
)

// Plugin is a configured input or output plugin. Plugins are keyed by
// name; the name doubles as the id.
type Plugin struct {
	Name        string
	Type        PluginType
	Path        string
	Description string
}

func (p Plugin) EntityID() string   { return p.Name }
func (p Plugin) EntityName() string { return p.Name }
