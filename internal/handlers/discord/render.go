package discord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/gridiron/internal/models"
	"github.com/KirkDiggler/gridiron/internal/services/coach"
)

// Component custom IDs
const (
	ButtonDraw      = "gridiron_draw"
	ButtonMulligan  = "gridiron_mulligan"
	ButtonShop      = "gridiron_shop"
	ButtonDraft     = "gridiron_draft"
	ButtonShowHand  = "gridiron_hand"
	SelectPlayCards = "gridiron_play"
	SelectBuyCard   = "gridiron_buy"
	SelectDraftPick = "gridiron_pick"
)

// Discord caps select menus at 25 options
const maxSelectOptions = 25

var errBadCardValue = errors.New("card must look like play:2 or player:4")

// cardValue encodes a catalog reference as "kind:id" for select menus and slash options
func cardValue(ref models.CardRef) string {
	return fmt.Sprintf("%s:%d", ref.Kind, ref.ID)
}

// parseCardValue is the inverse of cardValue; plural kinds are accepted
func parseCardValue(value string) (models.CardRef, error) {
	kind, rawID, ok := strings.Cut(strings.TrimSpace(value), ":")
	if !ok {
		return models.CardRef{}, errBadCardValue
	}
	id, err := strconv.Atoi(strings.TrimSpace(rawID))
	if err != nil {
		return models.CardRef{}, errBadCardValue
	}

	ref := models.CardRef{
		ID:   id,
		Kind: models.CardKind(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(kind)), "s")),
	}
	if !ref.Kind.Valid() {
		return models.CardRef{}, errBadCardValue
	}
	return ref, nil
}

// parsePositions turns "1 3,2" into hand instance IDs in that order. Positions are 1-based.
func parsePositions(raw string, hand []string) ([]string, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' '
	})

	ids := make([]string, 0, len(fields))
	for _, f := range fields {
		pos, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%q is not a hand position", f)
		}
		if pos < 1 || pos > len(hand) {
			return nil, fmt.Errorf("position %d is outside your hand of %d", pos, len(hand))
		}
		ids = append(ids, hand[pos-1])
	}
	return ids, nil
}

// cardSummary is a one-line description of what a card does
func cardSummary(card models.Card) string {
	if p, ok := card.AsPlayer(); ok {
		return fmt.Sprintf("%s, %s", p.Position, p.Team)
	}
	if p, ok := card.AsPlay(); ok {
		return fmt.Sprintf("%s play, %d yds, risk %d", p.Type, p.Yards, p.Risk)
	}
	if m, ok := card.AsModifier(); ok {
		return fmt.Sprintf("%s modifier", m.Type)
	}
	return string(card.Kind)
}

func cardLine(card models.Card) string {
	return fmt.Sprintf("**%s** (%s, %s) %s", card.Name, card.Rarity, cardValue(card.Ref()), cardSummary(card))
}

func statusLine(s *models.Session) string {
	p := s.Progress
	return fmt.Sprintf("Season %d/%d · Game %d/%d · Drive %d/%d",
		p.CurrentSeason, p.TotalSeasons,
		p.CurrentGame, p.TotalGamesPerSeason,
		p.CurrentDrive, p.TotalDrivesPerGame)
}

func ordinal(down int) string {
	switch down {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	}
	return fmt.Sprintf("%dth", down)
}

func sessionFields(s *models.Session) []*discordgo.MessageEmbedField {
	return []*discordgo.MessageEmbedField{
		{Name: "Score", Value: fmt.Sprintf("%.1f", s.Score), Inline: true},
		{Name: "Coaching Points", Value: strconv.Itoa(s.CoachingPoints), Inline: true},
		{Name: "Down", Value: fmt.Sprintf("%s & %.0f", ordinal(s.Down), s.YardsToGo-s.Distance), Inline: true},
		{Name: "Games Won", Value: strconv.Itoa(s.Progress.GamesWonInSeason), Inline: true},
		{Name: "Draw Pile", Value: strconv.Itoa(len(s.Zones.DrawPile)), Inline: true},
		{Name: "Discard", Value: strconv.Itoa(len(s.Zones.DiscardPile)), Inline: true},
	}
}

// renderHand shows the hand with a play selector and the between-drive buttons
func renderHand(s *models.Session, title string) *reply {
	var lines []string
	for n, inst := range s.Instances(s.Zones.Hand) {
		lines = append(lines, fmt.Sprintf("`%d` %s", n+1, cardLine(inst.Card)))
	}
	if len(lines) == 0 {
		lines = append(lines, "Your hand is empty. Draw some cards.")
	}
	if len(s.Zones.Bench) > 0 {
		var benched []string
		for _, inst := range s.Instances(s.Zones.Bench) {
			benched = append(benched, inst.Card.Name)
		}
		lines = append(lines, "", "Bench: "+strings.Join(benched, ", "))
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: strings.Join(lines, "\n"),
		Color:       colorBlue,
		Fields:      sessionFields(s),
		Footer:      &discordgo.MessageEmbedFooter{Text: statusLine(s)},
	}

	rep := &reply{Embeds: []*discordgo.MessageEmbed{embed}, Ephemeral: true}
	if s.Status.IsTerminal() {
		return rep
	}

	if len(s.Zones.Hand) > 0 {
		var options []discordgo.SelectMenuOption
		for n, inst := range s.Instances(s.Zones.Hand) {
			if n == maxSelectOptions {
				break
			}
			options = append(options, discordgo.SelectMenuOption{
				Label:       fmt.Sprintf("%d. %s", n+1, inst.Card.Name),
				Value:       inst.InstanceID,
				Description: cardSummary(inst.Card),
			})
		}
		minValues := 1
		rep.Components = append(rep.Components, discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{discordgo.SelectMenu{
				CustomID:    SelectPlayCards,
				Placeholder: "Pick the cards for your next drive",
				MinValues:   &minValues,
				MaxValues:   len(options),
				Options:     options,
			}},
		})
	}

	rep.Components = append(rep.Components, discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "Draw", Style: discordgo.PrimaryButton, CustomID: ButtonDraw},
			discordgo.Button{Label: "Mulligan", Style: discordgo.SecondaryButton, CustomID: ButtonMulligan},
			discordgo.Button{Label: "Shop", Style: discordgo.SuccessButton, CustomID: ButtonShop},
			discordgo.Button{Label: "Draft", Style: discordgo.SuccessButton, CustomID: ButtonDraft},
		},
	})
	return rep
}

// renderStart announces a new session
func renderStart(out *coach.StartSessionOutput) *reply {
	rep := renderHand(out.Session, fmt.Sprintf("%s takes over the %s", out.Session.CoachName, out.Archetype.Name))
	if out.ArchetypeFallback {
		rep.Content = fmt.Sprintf("Unknown playbook, running %s instead.", out.Archetype.Name)
	}
	return rep
}

func driveColor(out *coach.PlayDriveOutput) int {
	switch {
	case out.Transition == models.TransitionCareerComplete:
		return colorGold
	case out.Result.Turnover:
		return colorRed
	case out.Result.Successful:
		return colorGreen
	}
	return colorGray
}

// renderDrive shows the drive result and what happens next
func renderDrive(out *coach.PlayDriveOutput) *reply {
	headline := out.Headline
	if headline == "" {
		headline = fmt.Sprintf("Drive over: %.1f points", out.Result.Score)
	}

	description := strings.Join(out.PlayByPlay, "\n")
	if out.TransitionMessage != "" {
		description = strings.TrimSpace(description + "\n\n" + out.TransitionMessage)
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Yards", Value: fmt.Sprintf("%.1f", out.Result.YardsGained), Inline: true},
		{Name: "Drive Score", Value: fmt.Sprintf("%.1f", out.Result.Score), Inline: true},
		{Name: "Multiplier", Value: fmt.Sprintf("x%.2f", out.Result.Multiplier), Inline: true},
		{Name: "Coaching Points", Value: fmt.Sprintf("+%d (%d)", out.CoachingPointsEarned, out.Session.CoachingPoints), Inline: true},
		{Name: "Session Score", Value: fmt.Sprintf("%.1f", out.Session.Score), Inline: true},
	}
	if out.NewBest {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "New Best", Value: fmt.Sprintf("%.1f", out.BestScore), Inline: true})
	}

	embed := &discordgo.MessageEmbed{
		Title:       headline,
		Description: description,
		Color:       driveColor(out),
		Fields:      fields,
		Footer:      &discordgo.MessageEmbedFooter{Text: statusLine(out.Session)},
	}

	rep := &reply{Embeds: []*discordgo.MessageEmbed{embed}}
	if !out.Session.Status.IsTerminal() {
		rep.Components = []discordgo.MessageComponent{discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{Label: "Next Drive", Style: discordgo.PrimaryButton, CustomID: ButtonShowHand},
				discordgo.Button{Label: "Shop", Style: discordgo.SuccessButton, CustomID: ButtonShop},
				discordgo.Button{Label: "Draft", Style: discordgo.SuccessButton, CustomID: ButtonDraft},
			},
		}}
	}
	return rep
}

func cardMenu(customID, placeholder string, cards []models.Card, price func(models.Card) string) discordgo.MessageComponent {
	var options []discordgo.SelectMenuOption
	seen := make(map[models.CardRef]bool)
	for _, card := range cards {
		// draft offers can repeat a card; one option is enough to pick it
		if seen[card.Ref()] || len(options) == maxSelectOptions {
			continue
		}
		seen[card.Ref()] = true
		options = append(options, discordgo.SelectMenuOption{
			Label:       card.Name,
			Value:       cardValue(card.Ref()),
			Description: price(card),
		})
	}
	return discordgo.ActionsRow{
		Components: []discordgo.MessageComponent{discordgo.SelectMenu{
			CustomID:    customID,
			Placeholder: placeholder,
			Options:     options,
		}},
	}
}

// renderShop lists the shop with a buy selector
func renderShop(out *coach.ListShopOutput) *reply {
	var lines []string
	for _, card := range out.Cards {
		lines = append(lines, fmt.Sprintf("%s · %d pts", cardLine(card), max(card.Cost, 0)))
	}
	if len(lines) == 0 {
		lines = append(lines, "Sold out. Come back next game.")
	}

	rep := &reply{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       fmt.Sprintf("Pro Shop · Season %d Game %d", out.Season, out.Game),
			Description: strings.Join(lines, "\n"),
			Color:       colorGreen,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Coaching Points", Value: strconv.Itoa(out.CoachingPoints), Inline: true},
			},
		}},
		Ephemeral: true,
	}
	if len(out.Cards) > 0 {
		rep.Components = []discordgo.MessageComponent{
			cardMenu(SelectBuyCard, "Buy a card", out.Cards, func(c models.Card) string {
				return fmt.Sprintf("%d pts · %s", max(c.Cost, 0), cardSummary(c))
			}),
		}
	}
	return rep
}

// renderDraft lists the draft offer with a pick selector
func renderDraft(out *coach.RollDraftRewardOutput) *reply {
	var lines []string
	for _, card := range out.Cards {
		lines = append(lines, cardLine(card))
	}

	return &reply{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       "Draft Day",
			Description: strings.Join(lines, "\n"),
			Color:       colorGold,
		}},
		Components: []discordgo.MessageComponent{
			cardMenu(SelectDraftPick, "Draft a card", out.Cards, func(c models.Card) string {
				return fmt.Sprintf("%s · %s", c.Rarity, cardSummary(c))
			}),
		},
		Ephemeral: true,
	}
}

// renderLeaderboard ranks coaches by best score
func renderLeaderboard(entries []*models.LeaderboardEntry) *reply {
	var lines []string
	for _, e := range entries {
		name := e.CoachName
		if name == "" {
			name = e.CoachID
		}
		lines = append(lines, fmt.Sprintf("`#%d` **%s** %.1f", e.Rank, name, e.BestScore))
	}
	if len(lines) == 0 {
		lines = append(lines, "No scores yet. Be the first.")
	}

	return &reply{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       "Leaderboard",
			Description: strings.Join(lines, "\n"),
			Color:       colorGold,
		}},
	}
}

// renderCareer shows the career ladder and the coach's rung
func renderCareer(out *coach.ListCareerLevelsOutput) *reply {
	var lines []string
	for _, level := range out.Levels {
		marker := "·"
		if level.Level == out.Current.Level {
			marker = "▶"
		}
		lines = append(lines, fmt.Sprintf("%s **%s** (%.0f)", marker, level.Name, level.RequiredScore))
	}

	return &reply{
		Embeds: []*discordgo.MessageEmbed{{
			Title:       "Career Ladder",
			Description: strings.Join(lines, "\n"),
			Color:       colorBlue,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Best Score", Value: fmt.Sprintf("%.1f", out.BestScore), Inline: true},
				{Name: "Level", Value: out.Current.Name, Inline: true},
			},
		}},
		Ephemeral: true,
	}
}
