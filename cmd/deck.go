package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/taki/internal/game"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Inspect and deal the standard Taki deck",
	Long:  `Commands for inspecting the standard 118 card deck and dealing hands from it.`,
}

// deckListCmd represents the deck ls command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the cards in the standard deck",
	RunE: func(cmd *cobra.Command, args []string) error {
		shuffled, _ := cmd.Flags().GetBool("shuffled")
		out := cmd.OutOrStdout()

		if !shuffled {
			total := 0
			for _, e := range game.Composition() {
				fmt.Fprintf(out, "%2d x %s\n", e.Copies, e.Card)
				total += e.Copies
			}
			fmt.Fprintf(out, "%d cards\n", total)
			return nil
		}

		rounds, err := roundsFlag(cmd)
		if err != nil {
			return err
		}

		bank := game.NewStandardDeck()
		if seed, _ := cmd.Flags().GetUint64("seed"); cmd.Flags().Changed("seed") {
			bank.ShuffleWith(rand.New(rand.NewPCG(seed, seed)), rounds)
		} else {
			bank.Shuffle(rounds)
		}
		logger.Debug("shuffled bank", zap.Int("rounds", rounds), zap.Int("cards", bank.Len()))

		// Top of the bank first, the order cards will be drawn in
		for i, c := range bank.Items() {
			fmt.Fprintf(out, "%3d. %s\n", i+1, c)
		}
		return nil
	},
}

// deckDealCmd represents the deck deal command
var deckDealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Shuffle the deck and deal hands",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadSettings()

		rounds, err := roundsFlag(cmd)
		if err != nil {
			return err
		}
		players, err := positiveFlag(cmd, "players", cfg.Players)
		if err != nil {
			return fmt.Errorf("%w: %w", game.ErrNoPlayers, err)
		}
		hand, err := positiveFlag(cmd, "hand", cfg.HandSize)
		if err != nil {
			return err
		}

		g, err := game.Setup(game.Options{Players: players, HandSize: hand, ShuffleRounds: rounds})
		if err != nil {
			return fmt.Errorf("error dealing: %w", err)
		}
		logger.Debug("dealt hands", zap.Int("players", players), zap.Int("hand", hand), zap.Int("bank", g.Bank.Len()))

		out := cmd.OutOrStdout()
		for _, p := range g.Players {
			fmt.Fprintf(out, "Player %d (%d cards):\n", p.ID, p.HandSize())
			for _, c := range p.Hand.Items() {
				fmt.Fprintf(out, "  %s\n", c)
			}
		}
		fmt.Fprintf(out, "Bank: %d cards\n", g.Bank.Len())
		return nil
	},
}

// roundsFlag returns --rounds, falling back to the configured value
func roundsFlag(cmd *cobra.Command) (int, error) {
	rounds, _ := cmd.Flags().GetInt("rounds")
	if rounds < 0 {
		return 0, fmt.Errorf("rounds must not be negative: %d", rounds)
	}
	if !cmd.Flags().Changed("rounds") {
		rounds = loadSettings().ShuffleRounds
	}
	return rounds, nil
}

// positiveFlag returns an int flag that must be at least 1 when given,
// falling back to the configured value when it is not
func positiveFlag(cmd *cobra.Command, name string, fallback int) (int, error) {
	if !cmd.Flags().Changed(name) {
		return fallback, nil
	}
	v, _ := cmd.Flags().GetInt(name)
	if v < 1 {
		return 0, fmt.Errorf("--%s must be at least 1: %d", name, v)
	}
	return v, nil
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckDealCmd)

	deckListCmd.Flags().Bool("shuffled", false, "Print a shuffled draw order instead of the composition")
	deckListCmd.Flags().Int("rounds", game.DefaultShuffleRounds, "Number of shuffle rounds")
	deckListCmd.Flags().Uint64("seed", 0, "Seed for a reproducible shuffle")

	deckDealCmd.Flags().Int("rounds", game.DefaultShuffleRounds, "Number of shuffle rounds")
	deckDealCmd.Flags().IntP("players", "p", 0, "Number of players (default from config)")
	deckDealCmd.Flags().IntP("hand", "n", 0, "Cards per hand (default from config)")
}
