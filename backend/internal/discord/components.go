package discord

import (
	"fmt"

	"toolshelf/backend/internal/catalog"
	"toolshelf/backend/internal/constants"
	"toolshelf/backend/internal/grid"
	"toolshelf/backend/internal/icons"

	"github.com/bwmarrin/discordgo"
)

// Component custom ids
const (
	CustomIDPrev     = "toolshelf:prev"
	CustomIDNext     = "toolshelf:next"
	CustomIDCategory = "toolshelf:category"
)

// CreateGridComponents builds the pager buttons and the category select
// for a grid view
func CreateGridComponents(v *grid.View, counts []catalog.CategoryCount, total int) []discordgo.MessageComponent {
	buttons := discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "Prev",
				Style:    discordgo.SecondaryButton,
				CustomID: CustomIDPrev,
				Disabled: v.CurrentPage() <= 1,
				Emoji:    &discordgo.ComponentEmoji{Name: "◀️"},
			},
			discordgo.Button{
				Label:    "Next",
				Style:    discordgo.SecondaryButton,
				CustomID: CustomIDNext,
				Disabled: v.CurrentPage() >= v.TotalPages(),
				Emoji:    &discordgo.ComponentEmoji{Name: "▶️"},
			},
		},
	}

	options := []discordgo.SelectMenuOption{{
		Label:       string(catalog.All),
		Value:       string(catalog.All),
		Description: fmt.Sprintf("%d tools", total),
		Emoji:       &discordgo.ComponentEmoji{Name: icons.ForCategory(catalog.All)},
		Default:     v.Category() == catalog.All,
	}}
	for _, cc := range counts {
		if len(options) == constants.DiscordMaxSelectOptions {
			break
		}
		options = append(options, discordgo.SelectMenuOption{
			Label:       string(cc.Category),
			Value:       string(cc.Category),
			Description: fmt.Sprintf("%d tools", cc.Count),
			Emoji:       &discordgo.ComponentEmoji{Name: icons.ForCategory(cc.Category)},
			Default:     v.Category() == cc.Category,
		})
	}

	menu := discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    CustomIDCategory,
				Placeholder: "Category",
				Options:     options,
			},
		},
	}

	return []discordgo.MessageComponent{buttons, menu}
}

// applyComponent mutates v for a button press or category pick and reports
// whether the interaction was one of ours
func applyComponent(v *grid.View, src grid.Source, data discordgo.MessageComponentInteractionData) bool {
	switch data.CustomID {
	case CustomIDPrev:
		v.PrevPage()
	case CustomIDNext:
		v.NextPage()
	case CustomIDCategory:
		if len(data.Values) == 0 {
			return true
		}
		cat, ok := catalog.ParseCategory(data.Values[0])
		if !ok {
			return true
		}
		v.Apply(grid.Compute(src, v.SetCategory(cat)))
	default:
		return false
	}
	return true
}
