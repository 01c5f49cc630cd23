package catalog

// ComponentKind groups the showcased UI primitives.
type ComponentKind string

const (
	KindButton ComponentKind = "button"
	KindInput  ComponentKind = "input"
	KindBadge  ComponentKind = "badge"
	KindAlert  ComponentKind = "alert"
	KindCard   ComponentKind = "card"
	KindToggle ComponentKind = "toggle"
	KindSelect ComponentKind = "select"
	KindRadio  ComponentKind = "radio"
)

// ComponentKinds is the display order of the component library.
var ComponentKinds = []ComponentKind{
	KindButton, KindInput, KindBadge, KindAlert, KindCard, KindToggle, KindSelect, KindRadio,
}

// Title returns the section heading for a kind.
func (k ComponentKind) Title() string {
	switch k {
	case KindButton:
		return "Buttons"
	case KindInput:
		return "Inputs"
	case KindBadge:
		return "Badges"
	case KindAlert:
		return "Alerts"
	case KindCard:
		return "Cards"
	case KindToggle:
		return "Toggles"
	case KindSelect:
		return "Select"
	case KindRadio:
		return "Radio groups"
	default:
		return string(k)
	}
}

// ComponentSpec is one showcased primitive with the snippet a user copies.
type ComponentSpec struct {
	Kind        ComponentKind
	Name        string
	Description string
	// Accent is the colour the primitive is drawn with.
	Accent string
	CSS    string
	// Options lists the choices of select and radio primitives.
	Options []string
	// Default is the initial option index, or 1 for a toggle that starts on.
	Default int
	// Loading marks the button that runs the save simulation.
	Loading bool
}

// Key identifies the primitive in copy feedback.
func (c ComponentSpec) Key() string {
	return string(c.Kind) + "-" + slugify(c.Name)
}

// Components is the component library, ordered by ComponentKinds.
var Components = []ComponentSpec{
	{Kind: KindButton, Name: "Primary", Accent: "#3B82F6",
		CSS: "background: linear-gradient(135deg, #3B82F6, #6366F1); color: #FFFFFF; border-radius: 10px; padding: 10px 20px; font-family: Inter; font-size: 14px;"},
	{Kind: KindButton, Name: "Secondary", Accent: "#64748B",
		CSS: "background: linear-gradient(135deg, rgba(0,0,0,0.06), rgba(0,0,0,0.03)); color: #334155; border-radius: 10px; padding: 10px 20px;"},
	{Kind: KindButton, Name: "Outline", Accent: "#8B5CF6",
		CSS: "background: transparent; border: 1px solid; border-image: linear-gradient(135deg, #3B82F6, #8B5CF6) 1; border-radius: 10px; padding: 10px 20px;"},
	{Kind: KindButton, Name: "Ghost", Accent: "#94A3B8",
		CSS: "background: transparent; color: #64748B; border-radius: 10px; padding: 10px 20px;"},
	{Kind: KindButton, Name: "Destructive", Accent: "#E11D48",
		CSS: "background: linear-gradient(135deg, #E11D48, #F43F5E); color: #FFFFFF; border-radius: 10px; padding: 10px 20px;"},
	{Kind: KindButton, Name: "Success", Accent: "#059669",
		CSS: "background: linear-gradient(135deg, #059669, #10B981); color: #FFFFFF; border-radius: 10px; padding: 10px 20px;"},
	{Kind: KindButton, Name: "Save", Description: "Runs a simulated save", Accent: "#6366F1", Loading: true,
		CSS: "background: linear-gradient(135deg, #3B82F6, #6366F1); color: #FFFFFF; border-radius: 10px; padding: 10px 20px;"},

	{Kind: KindInput, Name: "Default", Description: "Enter text...", Accent: "#3B82F6",
		CSS: "background: rgba(0,0,0,0.02); border: 1px solid rgba(0,0,0,0.1); border-radius: 10px; padding: 10px 14px; font-size: 14px;"},

	{Kind: KindBadge, Name: "Neural", Accent: "#3B82F6",
		CSS: "background: rgba(59, 130, 246, 0.15); color: #3B82F6; border-radius: 9999px; padding: 4px 12px;"},
	{Kind: KindBadge, Name: "Matrix", Accent: "#10B981",
		CSS: "background: rgba(16, 185, 129, 0.15); color: #10B981; border-radius: 9999px; padding: 4px 12px;"},
	{Kind: KindBadge, Name: "Signal", Accent: "#E11D48",
		CSS: "background: rgba(225, 29, 72, 0.15); color: #E11D48; border-radius: 9999px; padding: 4px 12px;"},
	{Kind: KindBadge, Name: "Ember", Accent: "#F97316",
		CSS: "background: rgba(249, 115, 22, 0.15); color: #F97316; border-radius: 9999px; padding: 4px 12px;"},
	{Kind: KindBadge, Name: "Solar", Accent: "#EAB308",
		CSS: "background: rgba(234, 179, 8, 0.15); color: #EAB308; border-radius: 9999px; padding: 4px 12px;"},
	{Kind: KindBadge, Name: "Logic", Accent: "#6366F1",
		CSS: "background: rgba(99, 102, 241, 0.15); color: #6366F1; border-radius: 9999px; padding: 4px 12px;"},
	{Kind: KindBadge, Name: "Synapse", Accent: "#8B5CF6",
		CSS: "background: rgba(139, 92, 246, 0.15); color: #8B5CF6; border-radius: 9999px; padding: 4px 12px;"},

	{Kind: KindAlert, Name: "Information", Description: "A new version of the design system is available. Check the changelog for details.", Accent: "#3B82F6",
		CSS: "background: rgba(59, 130, 246, 0.08); border: 1px solid rgba(59, 130, 246, 0.2); border-radius: 12px; padding: 16px;"},
	{Kind: KindAlert, Name: "Success", Description: "Your component library has been successfully deployed to production.", Accent: "#10B981",
		CSS: "background: rgba(16, 185, 129, 0.08); border: 1px solid rgba(16, 185, 129, 0.2); border-radius: 12px; padding: 16px;"},
	{Kind: KindAlert, Name: "Warning", Description: "Some color tokens have been deprecated. Please migrate to the new naming convention.", Accent: "#EAB308",
		CSS: "background: rgba(234, 179, 8, 0.08); border: 1px solid rgba(234, 179, 8, 0.2); border-radius: 12px; padding: 16px;"},
	{Kind: KindAlert, Name: "Error", Description: "Failed to load the font family. Check your network connection and try again.", Accent: "#E11D48",
		CSS: "background: rgba(225, 29, 72, 0.08); border: 1px solid rgba(225, 29, 72, 0.2); border-radius: 12px; padding: 16px;"},

	{Kind: KindCard, Name: "Basic Card", Description: "A simple content container with border and subtle background for grouping related information.", Accent: "#3B82F6",
		CSS: "background: #FFFFFF; border: 1px solid rgba(0,0,0,0.06); border-radius: 16px; padding: 24px;"},
	{Kind: KindCard, Name: "Interactive Card", Description: "Hover to see the elevation and scale effect. Click to navigate to a detailed view.", Accent: "#8B5CF6",
		CSS: "background: #FFFFFF; border: 1px solid rgba(0,0,0,0.06); border-radius: 16px; padding: 24px;"},
	{Kind: KindCard, Name: "Total Users", Description: "24,891  ▲ 12.5% from last month", Accent: "#10B981",
		CSS: "background: #FFFFFF; border: 1px solid rgba(0,0,0,0.06); border-radius: 16px; padding: 24px;"},

	{Kind: KindToggle, Name: "Notifications", Description: "Receive push notifications", Accent: "#3B82F6", Default: 1,
		CSS: "width: 44px; height: 24px; border-radius: 9999px; background: #3B82F6; /* knob */ width: 20px; height: 20px; background: #FFFFFF;"},
	{Kind: KindToggle, Name: "Dark Mode", Description: "Use dark interface theme", Accent: "#3B82F6", Default: 1,
		CSS: "width: 44px; height: 24px; border-radius: 9999px; background: #3B82F6; /* knob */ width: 20px; height: 20px; background: #FFFFFF;"},
	{Kind: KindToggle, Name: "Analytics", Description: "Share usage analytics", Accent: "#3B82F6",
		CSS: "width: 44px; height: 24px; border-radius: 9999px; background: #CBD5E1; /* knob */ width: 20px; height: 20px; background: #FFFFFF;"},
	{Kind: KindToggle, Name: "Auto-save", Description: "Save changes automatically", Accent: "#3B82F6", Default: 1,
		CSS: "width: 44px; height: 24px; border-radius: 9999px; background: #3B82F6; /* knob */ width: 20px; height: 20px; background: #FFFFFF;"},

	{Kind: KindSelect, Name: "Color family", Accent: "#3B82F6", Default: 4,
		Options: []string{"Signal (Red)", "Ember (Orange)", "Solar (Yellow)", "Matrix (Green)", "Neural (Blue)", "Logic (Indigo)", "Synapse (Violet)"},
		CSS:     "appearance: none; background: rgba(0,0,0,0.02); border: 1px solid rgba(0,0,0,0.1); border-radius: 10px; padding: 10px 36px 10px 14px; font-size: 14px;"},

	{Kind: KindRadio, Name: "Color", Accent: "#3B82F6", Default: 2,
		Options: []string{"Signal", "Matrix", "Neural", "Synapse"},
		CSS:     radioCSS},
	{Kind: KindRadio, Name: "Size", Accent: "#3B82F6", Default: 1,
		Options: []string{"Small", "Medium", "Large"},
		CSS:     radioCSS},
	{Kind: KindRadio, Name: "Plan", Accent: "#6366F1", Default: 1,
		Options: []string{"Free", "Pro", "Enterprise"},
		CSS:     radioCSS},
}

const radioCSS = "/* Radio outer */ width: 20px; height: 20px; border-radius: 50%; border: 2px solid rgba(0,0,0,0.2); /* Selected */ border-color: #3B82F6; /* Inner dot */ width: 10px; height: 10px; border-radius: 50%; background: linear-gradient(135deg, #3B82F6, #6366F1);"

// ComponentsByKind returns the primitives of one kind in table order.
func ComponentsByKind(kind ComponentKind) []ComponentSpec {
	var out []ComponentSpec
	for _, c := range Components {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}
