package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	domain "github.com/hmcts/sscs-hearings-go/internal/domain/hearings"
	"github.com/hmcts/sscs-hearings-go/pkg/config"
)

var (
	processCaseID string
	processState  string
	processReason string
)

// ProcessCmd executes a single hearing transition without the queue. Useful
// for replaying dead-lettered requests.
var ProcessCmd = &cobra.Command{
	Use:   "process",
	Short: "Process one hearing request",
	Long: `Execute a single hearing lifecycle transition directly, bypassing
the message queue. Intended for replaying dead-lettered requests and
for local testing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		store, err := newCaseStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		service, err := newService(cfg, store)
		if err != nil {
			return err
		}

		state, err := domain.ParseHearingState(processState)
		if err != nil {
			return err
		}

		request := domain.HearingRequest{
			CaseID:             processCaseID,
			HearingState:       state,
			CancellationReason: domain.CancellationReason(processReason),
		}
		if err := service.ProcessHearingRequest(cmd.Context(), request); err != nil {
			return err
		}

		fmt.Printf("Processed %s for case %s\n", state, processCaseID)
		return nil
	},
}

// CaseCmd inspects a stored case record.
var CaseCmd = &cobra.Command{
	Use:   "case <case-id>",
	Short: "Inspect a case record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		store, err := newCaseStore(cfg)
		if err != nil {
			return err
		}
		defer store.Close()

		record, err := store.GetCase(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Case:       %s\n", record.ID)
		fmt.Printf("State:      %s\n", record.State)
		fmt.Printf("Benefit:    %s/%s\n", record.BenefitCode, record.IssueCode)
		fmt.Printf("Venue:      %s\n", record.ProcessingVenue)
		fmt.Printf("Adjourning: %v\n", record.AdjournmentInProgress)
		if len(record.Hearings) == 0 {
			fmt.Println("Hearings:   none")
			return nil
		}
		fmt.Println("Hearings:")
		for _, h := range record.Hearings {
			fmt.Printf("  %s  v%d  %s\n", h.HearingID, h.Version, h.Status)
		}
		return nil
	},
}

func init() {
	ProcessCmd.Flags().StringVar(&processCaseID, "case-id", "", "Case identifier (required)")
	ProcessCmd.Flags().StringVar(&processState, "state", "", "Hearing state to process (required)")
	ProcessCmd.Flags().StringVar(&processReason, "reason", "", "Cancellation reason (cancelHearing only)")
	_ = ProcessCmd.MarkFlagRequired("case-id")
	_ = ProcessCmd.MarkFlagRequired("state")
}
