package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
	"github.com/vfg2006/weathertrigger-console/internal/app"
	"github.com/vfg2006/weathertrigger-console/internal/usecases/campaigning"
)

var (
	campaignsAccount string
	campaignsSearch  string
	campaignsForce   bool
)

var campaignsCmd = &cobra.Command{
	Use:   "campaigns",
	Short: "List campaigns across the active ad accounts",
	Long: `Lists Meta campaigns of every active ad account.

Examples:
  console campaigns
  console campaigns --account act_123 --force
  console campaigns --search summer
  console campaigns pause 120210000000001`,
	RunE: runCampaigns,
}

var campaignsPauseCmd = &cobra.Command{
	Use:   "pause <campaign-id>",
	Short: "Pause a campaign",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCampaignAction(cmd, args[0], backenddomain.ActionPause)
	},
}

var campaignsResumeCmd = &cobra.Command{
	Use:   "resume <campaign-id>",
	Short: "Resume a paused campaign",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCampaignAction(cmd, args[0], backenddomain.ActionResume)
	},
}

func init() {
	campaignsCmd.Flags().StringVar(&campaignsAccount, "account", "", "Only campaigns of this ad account")
	campaignsCmd.Flags().StringVarP(&campaignsSearch, "search", "q", "", "Filter by name, account, id or type")
	campaignsCmd.Flags().BoolVar(&campaignsForce, "force", false, "Ignore the freshness window")

	campaignsCmd.AddCommand(campaignsPauseCmd)
	campaignsCmd.AddCommand(campaignsResumeCmd)
}

func runCampaigns(cmd *cobra.Command, args []string) error {
	return withApp(func(ctx context.Context, a *app.App) error {
		if err := requireSession(ctx, a); err != nil {
			return err
		}

		var err error
		switch {
		case campaignsForce && campaignsAccount != "":
			err = a.Campaigns.LoadCampaignsForAccount(ctx, campaignsAccount)
		case campaignsForce:
			err = a.Campaigns.ForceRefresh(ctx)
		default:
			err = a.Campaigns.LoadCampaigns(ctx)
		}
		if err != nil {
			return err
		}

		var campaigns []campaigning.CampaignWithAdSets
		if campaignsAccount != "" {
			campaigns = a.Campaigns.CampaignsForAccount(campaignsAccount)
		} else {
			campaigns = a.Campaigns.Campaigns()
		}

		renderCampaigns(cmd.OutOrStdout(), campaigning.FilterCampaigns(campaigns, campaignsSearch))
		return nil
	})
}

func runCampaignAction(cmd *cobra.Command, campaignID string, action backenddomain.Action) error {
	return withApp(func(ctx context.Context, a *app.App) error {
		if err := requireSession(ctx, a); err != nil {
			return err
		}

		if err := a.Campaigns.LoadCampaigns(ctx); err != nil {
			return err
		}

		if err := a.Campaigns.UpdateCampaignStatus(ctx, campaignID, action); err != nil {
			return err
		}

		if c, ok := a.Campaigns.CampaignByID(campaignID); ok {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", c.Name, c.Status)
		}
		return nil
	})
}
