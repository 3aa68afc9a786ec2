package discord

import (
	"fmt"
	"strings"
	"time"

	"toolshelf/backend/internal/catalog"
	"toolshelf/backend/internal/constants"
	"toolshelf/backend/internal/grid"
	"toolshelf/backend/internal/icons"

	"github.com/bwmarrin/discordgo"
)

const (
	// Embed colors
	ColorSuccess = 0x2ecc71 // Green
	ColorError   = 0xe74c3c // Red
	ColorInfo    = 0x3498db // Blue
	ColorPurple  = 0x9b59b6 // Purple
	ColorGray    = 0x95a5a6 // Gray
)

// toolURL joins the public base with a tool path. Without a base the bare
// path is returned.
func toolURL(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + path
}

func gridTitle(v *grid.View) string {
	title := fmt.Sprintf("%s %s tools", icons.ForCategory(v.Category()), v.Category())
	if v.Category() == catalog.All {
		title = icons.ForCategory(catalog.All) + " All tools"
	}
	if q := v.Query(); q != "" {
		title += fmt.Sprintf(" matching %q", Truncate(q, 40))
	}
	return title
}

// CreateGridEmbed renders the current page of a grid view
func CreateGridEmbed(v *grid.View, baseURL string) *discordgo.MessageEmbed {
	items := v.Items()
	if len(items) == 0 {
		return &discordgo.MessageEmbed{
			Title:       gridTitle(v),
			Description: "No tools match. Try another search or pick a different category.",
			Color:       ColorGray,
			Timestamp:   time.Now().Format(time.RFC3339),
			Footer: &discordgo.MessageEmbedFooter{
				Text: "Page 1/1",
			},
		}
	}

	var list strings.Builder
	fmt.Fprintf(&list, "**📊 Total tools:** %d\n\n", v.Total())

	start := (v.CurrentPage() - 1) * grid.PageSize
	for i, d := range items {
		name := EscapeMarkdown(d.Name)
		if baseURL != "" {
			name = FormatLink(name, toolURL(baseURL, d.Path))
		}
		line := fmt.Sprintf("%s **%d.** %s %s\n", icons.ForTool(d), start+i+1, FormatBold(name), badges(d))
		line += fmt.Sprintf("    %s\n", Truncate(EscapeMarkdown(d.Description), 90))
		if list.Len()+len(line) > constants.DiscordMaxEmbedDescription {
			break
		}
		list.WriteString(line)
	}

	return &discordgo.MessageEmbed{
		Title:       gridTitle(v),
		Description: list.String(),
		Color:       ColorInfo,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Page %d/%d", v.CurrentPage(), v.TotalPages()),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

func badges(d catalog.Descriptor) string {
	var b []string
	if d.IsNew {
		b = append(b, "🆕")
	}
	if d.Featured {
		b = append(b, "⭐")
	}
	return strings.Join(b, " ")
}

// CreateToolEmbed describes a single tool with its related tools
func CreateToolEmbed(d catalog.Descriptor, related []catalog.Descriptor, baseURL string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s %s", icons.ForTool(d), d.Name),
		Description: EscapeMarkdown(d.Description),
		Color:       ColorSuccess,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "📂 Category",
				Value:  fmt.Sprintf("%s %s", icons.ForCategory(d.Category), d.Category),
				Inline: true,
			},
			{
				Name:   "🔗 Path",
				Value:  FormatInlineCode(d.Path),
				Inline: true,
			},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	if baseURL != "" {
		embed.URL = toolURL(baseURL, d.Path)
	}
	if len(d.Tags) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "🏷️ Tags",
			Value: Truncate(strings.Join(d.Tags, ", "), 1024),
		})
	}
	if len(related) > 0 {
		names := make([]string, 0, len(related))
		for _, r := range related {
			names = append(names, fmt.Sprintf("%s %s", icons.ForTool(r), EscapeMarkdown(r.Name)))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "🧭 Related",
			Value: strings.Join(names, "\n"),
		})
	}
	if b := badges(d); b != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: b}
	}
	return embed
}

// CreateHelpEmbed lists the bot commands
func CreateHelpEmbed(prefix string) *discordgo.MessageEmbed {
	lines := []string{
		FormatInlineCode(prefix) + " browse every tool",
		FormatInlineCode(prefix+" search <query>") + " search by name, tag or description",
		FormatInlineCode(prefix+" category <name>") + " show one category",
		FormatInlineCode(prefix+" show <tool-id>") + " describe a tool",
	}
	return CreateEmbed("🧰 Toolshelf", strings.Join(lines, "\n"), "Use the buttons below a listing to change pages", ColorPurple)
}

// CreateErrorEmbed creates an error embed
func CreateErrorEmbed(message string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "❌ Error",
		Description: message,
		Color:       ColorError,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
}

// CreateEmbed creates a basic embed
func CreateEmbed(title, description, footer string, color int) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Timestamp:   time.Now().Format(time.RFC3339),
	}

	if footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: footer,
		}
	}

	return embed
}
