package view

import (
	"anchovy/internal/tui/design"
	"anchovy/internal/tui/feedback"
)

// copyBadge returns the transient marker for key, or "".
func copyBadge(ind *feedback.Indicator, key string) string {
	switch {
	case ind.IsCopied(key):
		return design.CopiedBadgeStyle.Render("copied")
	case ind.IsFailed(key):
		return design.FailedBadgeStyle.Render("copy failed")
	default:
		return ""
	}
}

// badgeText is copyBadge without styling, for places that draw their own
// background.
func badgeText(ind *feedback.Indicator, key string) string {
	switch {
	case ind.IsCopied(key):
		return "copied"
	case ind.IsFailed(key):
		return "failed"
	default:
		return ""
	}
}

// focusMarker prefixes the focused row; RenderPage scrolls to it.
const focusMarker = "▸ "

func cursor(selected bool) string {
	if selected {
		return design.KeyStyle.Render(focusMarker)
	}
	return "  "
}

func sectionTitle(title, subtitle string) string {
	out := design.TitleStyle.Foreground(design.ColorPrimary).Render(title)
	if subtitle != "" {
		out += "\n" + design.SubtitleStyle.Render(subtitle)
	}
	return out + "\n"
}

func hint(text string) string {
	return design.TextMutedStyle.Render(text)
}
