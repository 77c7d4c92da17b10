package main

import (
	"auction-client/internal/biddingerrors"
	"auction-client/internal/listfilter"
	"auction-client/internal/models"
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

// closingLayout is how closing times are typed on the command line, in local time
const closingLayout = "2006-01-02 15:04"

func newLoginCmd(flags *globalFlags) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, flags, false, func(ctx context.Context, a *app) error {
				identity, err := a.session.SignIn(ctx, email, password)
				if err != nil {
					return err
				}
				return a.out.identity("Signed in as", identity)
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(flags *globalFlags) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, flags, false, func(ctx context.Context, a *app) error {
				if err := a.session.SignUp(ctx, name, email, password); err != nil {
					return err
				}
				return a.out.message("Registered. Sign in with: auction-client login --email " + email)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	for _, f := range []string{"name", "email", "password"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func newLogoutCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, flags, false, func(ctx context.Context, a *app) error {
				if err := a.session.SignOut(ctx); err != nil {
					return err
				}
				return a.out.message("Signed out")
			})
		},
	}
}

func newWhoamiCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, flags, true, func(_ context.Context, a *app) error {
				identity := a.session.Identity()
				if identity == nil {
					return biddingerrors.ErrNotAuthenticated
				}
				return a.out.identity("Signed in as", *identity)
			})
		},
	}
}

func newListCmd(flags *globalFlags) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List auctions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := listfilter.Parse(filter)
			if err != nil {
				return err
			}
			return run(cmd, flags, true, func(ctx context.Context, a *app) error {
				auctions, err := a.bidding.ListAuctions(ctx, f)
				if err != nil {
					return err
				}
				return a.out.auctions(auctions)
			})
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "all", "all, mine, open or closed")
	return cmd
}

func newShowCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show an auction with its bid history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return run(cmd, flags, true, func(ctx context.Context, a *app) error {
				auction, err := a.bidding.LoadAuction(ctx, id)
				if err != nil {
					return err
				}
				return a.out.auction(auction)
			})
		},
	}
}

func newBidCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "bid ID AMOUNT",
		Short: "Place a bid",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			amount, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[1])
			}
			return run(cmd, flags, true, func(ctx context.Context, a *app) error {
				auction, err := a.bidding.PlaceBid(ctx, id, amount)
				if err != nil {
					return err
				}
				return a.out.auction(auction)
			})
		},
	}
}

func newWithdrawCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw ID",
		Short: "Withdraw your bid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return run(cmd, flags, true, func(ctx context.Context, a *app) error {
				auction, err := a.bidding.WithdrawBid(ctx, id)
				if err != nil {
					return err
				}
				return a.out.auction(auction)
			})
		},
	}
}

type draftFlags struct {
	title       string
	description string
	startBid    int64
	closedAt    string
	cover       string
}

func (d *draftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&d.title, "title", "", "auction title")
	cmd.Flags().StringVar(&d.description, "description", "", "auction description")
	cmd.Flags().Int64Var(&d.startBid, "start-bid", 0, "starting price")
	cmd.Flags().StringVar(&d.closedAt, "closed-at", "", `closing time, "`+closingLayout+`" local time`)
	cmd.Flags().StringVar(&d.cover, "cover", "", "cover image `FILE`")
}

// apply overwrites the fields of base that were set on the command line
func (d *draftFlags) apply(cmd *cobra.Command, base models.AuctionDraft) (models.AuctionDraft, error) {
	draft := base
	if cmd.Flags().Changed("title") {
		draft.Title = d.title
	}
	if cmd.Flags().Changed("description") {
		draft.Description = d.description
	}
	if cmd.Flags().Changed("start-bid") {
		draft.StartBid = d.startBid
	}
	if cmd.Flags().Changed("closed-at") {
		t, err := time.ParseInLocation(closingLayout, d.closedAt, time.Local)
		if err != nil {
			return models.AuctionDraft{}, fmt.Errorf("%w - closed-at must look like %s", biddingerrors.ErrInvalidDraft, closingLayout)
		}
		draft.ClosedAt = t
	}
	return draft, nil
}

func newCreateCmd(flags *globalFlags) *cobra.Command {
	d := &draftFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "List a new auction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			draft, err := d.apply(cmd, models.AuctionDraft{})
			if err != nil {
				return err
			}
			cover, err := readCover(d.cover)
			if err != nil {
				return err
			}
			return run(cmd, flags, true, func(ctx context.Context, a *app) error {
				auction, err := a.bidding.CreateAuction(ctx, draft, cover)
				if err != nil {
					return err
				}
				return a.out.auction(auction)
			})
		},
	}
	d.register(cmd)
	for _, f := range []string{"title", "description", "start-bid", "closed-at", "cover"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func newEditCmd(flags *globalFlags) *cobra.Command {
	d := &draftFlags{}

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit your auction; unset flags keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			cover, err := readCover(d.cover)
			if err != nil {
				return err
			}
			return run(cmd, flags, true, func(ctx context.Context, a *app) error {
				current, err := a.bidding.LoadAuction(ctx, id)
				if err != nil {
					return err
				}
				draft, err := d.apply(cmd, models.AuctionDraft{
					Title:       current.Record.Title,
					Description: current.Record.Description,
					StartBid:    current.Record.StartBid,
					ClosedAt:    current.Record.ClosedAt,
				})
				if err != nil {
					return err
				}
				auction, err := a.bidding.UpdateAuction(ctx, id, draft, cover)
				if err != nil {
					return err
				}
				return a.out.auction(auction)
			})
		},
	}
	d.register(cmd)
	return cmd
}

func newCoverCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "cover ID FILE",
		Short: "Replace the cover image of your auction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			cover, err := readCover(args[1])
			if err != nil {
				return err
			}
			return run(cmd, flags, true, func(ctx context.Context, a *app) error {
				auction, err := a.bidding.ChangeCover(ctx, id, cover)
				if err != nil {
					return err
				}
				return a.out.auction(auction)
			})
		},
	}
}

func newDeleteCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete your auction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return run(cmd, flags, true, func(ctx context.Context, a *app) error {
				if err := a.bidding.DeleteAuction(ctx, id); err != nil {
					return err
				}
				return a.out.message(fmt.Sprintf("Auction %d deleted", id))
			})
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid auction id %q", s)
	}
	return id, nil
}

// readCover loads an image file; an empty path yields an empty cover
func readCover(path string) (models.CoverImage, error) {
	if path == "" {
		return models.CoverImage{}, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return models.CoverImage{}, fmt.Errorf("read cover: %w", err)
	}
	return models.CoverImage{Filename: path, Content: content}, nil
}
