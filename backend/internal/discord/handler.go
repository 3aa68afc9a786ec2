// Package discord serves the tool grid as a chat browser: a prefixed command
// posts a listing embed, and its buttons and category select page through
// that listing in place.
package discord

import (
	"context"
	"fmt"
	"strings"

	"toolshelf/backend/internal/catalog"
	"toolshelf/backend/internal/constants"
	"toolshelf/backend/internal/grid"
	apperrors "toolshelf/backend/pkg/errors"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// sender is the part of *discordgo.Session the handler writes through
type sender interface {
	ChannelMessageSendComplex(channelID string, data *discordgo.MessageSend, options ...discordgo.RequestOption) (*discordgo.Message, error)
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

// RelatedFinder ranks tools related to a given tool
type RelatedFinder interface {
	Related(ctx context.Context, id string, limit int) ([]catalog.Descriptor, error)
}

// Handler handles Discord commands and component interactions
type Handler struct {
	registry *catalog.Registry
	related  RelatedFinder
	prefix   string
	baseURL  string
	sessions *sessionStore
	logger   *zap.Logger
}

// NewHandler creates a new Discord handler. baseURL may be empty, in which
// case tool names are not linked.
func NewHandler(registry *catalog.Registry, related RelatedFinder, prefix, baseURL string, logger *zap.Logger) *Handler {
	if prefix == "" {
		prefix = constants.DefaultCommandPrefix
	}
	return &Handler{
		registry: registry,
		related:  related,
		prefix:   prefix,
		baseURL:  baseURL,
		sessions: newSessionStore(constants.MaxBrowseSessions),
		logger:   logger,
	}
}

// HandleMessage processes a Discord message
func (h *Handler) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || s.State == nil || s.State.User == nil {
		return
	}
	h.handleMessage(context.Background(), s, s.State.User.ID, m)
}

// HandleInteraction processes button presses and select picks on listings
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionMessageComponent {
		return
	}
	h.handleInteraction(s, i.Interaction)
}

func (h *Handler) handleMessage(ctx context.Context, out sender, botID string, m *discordgo.MessageCreate) {
	// Ignore messages from the bot itself and from other bots
	if m.Author.ID == botID || m.Author.Bot {
		return
	}

	cmd, ok := ParseCommand(h.prefix, m.Content)
	if !ok {
		return
	}

	h.logger.Info("Processing tools command",
		zap.String("user_id", m.Author.ID),
		zap.String("channel_id", m.ChannelID),
		zap.Int("kind", int(cmd.Kind)),
	)

	msg, view := h.render(ctx, cmd)
	msg.Reference = m.Reference()

	sent, err := out.ChannelMessageSendComplex(m.ChannelID, msg)
	if err != nil {
		h.logger.Error("Failed to send message",
			zap.Error(apperrors.NewDiscordMessageSendFailed(m.ChannelID, err)),
		)
		return
	}
	if view != nil && sent != nil {
		h.sessions.put(sent.ID, view)
	}
}

// render answers a command. The view is non-nil for listings that accept
// component interactions.
func (h *Handler) render(ctx context.Context, cmd Command) (*discordgo.MessageSend, *grid.View) {
	switch cmd.Kind {
	case CommandBrowse:
		return h.listing(grid.NewView(h.registry))

	case CommandSearch:
		v := grid.NewView(h.registry)
		v.Apply(grid.Compute(h.registry, v.SetQuery(cmd.Arg)))
		return h.listing(v)

	case CommandCategory:
		cat, ok := catalog.ParseCategory(cmd.Arg)
		if !ok {
			return errorMessage(fmt.Sprintf("Unknown category %s. Try one of: %s.",
				FormatInlineCode(cmd.Arg), categoryNames())), nil
		}
		v := grid.NewView(h.registry)
		v.Apply(grid.Compute(h.registry, v.SetCategory(cat)))
		return h.listing(v)

	case CommandShow:
		d, err := h.lookup(cmd.Arg)
		if err != nil {
			return errorMessage(fmt.Sprintf("No tool matches %s.", FormatInlineCode(cmd.Arg))), nil
		}
		var related []catalog.Descriptor
		if h.related != nil {
			related, err = h.related.Related(ctx, d.ID, constants.DefaultRelatedLimit)
			if err != nil {
				h.logger.Warn("Failed to load related tools", zap.String("tool_id", d.ID), zap.Error(err))
			}
		}
		return &discordgo.MessageSend{
			Embeds: []*discordgo.MessageEmbed{CreateToolEmbed(d, related, h.baseURL)},
		}, nil
	}

	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{CreateHelpEmbed(h.prefix)},
	}, nil
}

// lookup resolves an id, then falls back to the best search hit so
// "!tools show qr code" works without knowing the id
func (h *Handler) lookup(arg string) (catalog.Descriptor, error) {
	if d, err := h.registry.Get(strings.ToLower(arg)); err == nil {
		return d, nil
	}
	if hits := h.registry.Search(arg); len(hits) > 0 {
		return hits[0], nil
	}
	return catalog.Descriptor{}, apperrors.NewToolNotFound(arg)
}

func (h *Handler) listing(v *grid.View) (*discordgo.MessageSend, *grid.View) {
	return &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{CreateGridEmbed(v, h.baseURL)},
		Components: CreateGridComponents(v, h.registry.CategoryCounts(), h.registry.Len()),
	}, v
}

func (h *Handler) handleInteraction(out sender, in *discordgo.Interaction) {
	if in.Message == nil {
		return
	}
	data := in.MessageComponentData()

	sess, ok := h.sessions.get(in.Message.ID)
	if !ok {
		// the view was evicted or the bot restarted; start the listing over
		h.logger.Debug("Browse session expired", zap.String("message_id", in.Message.ID))
		h.sessions.put(in.Message.ID, grid.NewView(h.registry))
		sess, _ = h.sessions.get(in.Message.ID)
	}

	sess.mu.Lock()
	handled := applyComponent(sess.view, h.registry, data)
	embed := CreateGridEmbed(sess.view, h.baseURL)
	components := CreateGridComponents(sess.view, h.registry.CategoryCounts(), h.registry.Len())
	sess.mu.Unlock()

	if !handled {
		return
	}

	err := out.InteractionRespond(in, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
	if err != nil {
		h.logger.Error("Failed to update listing",
			zap.String("message_id", in.Message.ID),
			zap.Error(err),
		)
	}
}

func errorMessage(text string) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{CreateErrorEmbed(text)},
	}
}

func categoryNames() string {
	names := make([]string, 0, len(catalog.Categories()))
	for _, c := range catalog.Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}
