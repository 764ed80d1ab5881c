package main

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/spf13/cobra"

	"github.com/arloliu/ndspace/planstore"
)

func newPlanCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "plan",
		Short:   "print every worker's slice of the configured space",
		Example: `ndspace plan -f space.yaml`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.loadConfig(cmd)
			if err != nil {
				return err
			}
			r, err := newRunner(&cfg)
			if err != nil {
				return err
			}

			return r.describe(cmd.OutOrStdout())
		},
	}
}

func newWalkCmd(flags *globalFlags) *cobra.Command {
	var (
		workerID   int
		maxIndices int
	)

	cmd := &cobra.Command{
		Use:     "walk",
		Short:   "print the indices one worker visits, in traversal order",
		Example: `ndspace walk -f space.yaml --worker 1 --max 16`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.loadConfig(cmd)
			if err != nil {
				return err
			}
			r, err := newRunner(&cfg)
			if err != nil {
				return err
			}

			return r.walk(cmd.OutOrStdout(), workerID, maxIndices)
		},
	}
	cmd.Flags().IntVarP(&workerID, "worker", "w", 0, "worker id")
	cmd.Flags().IntVar(&maxIndices, "max", 0, "stop after this many indices (0 prints all)")

	return cmd
}

func newPublishCmd(flags *globalFlags) *cobra.Command {
	var (
		name   string
		bucket string
	)

	cmd := &cobra.Command{
		Use:     "publish",
		Short:   "publish the configured plan to a NATS KV bucket",
		Example: `ndspace publish -f space.yaml --name heat-2d`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.loadConfig(cmd)
			if err != nil {
				return err
			}
			r, err := newRunner(&cfg)
			if err != nil {
				return err
			}

			return withStore(cmd.Context(), flags, cmd, bucket, func(ctx context.Context, store *planstore.Store) error {
				rev, err := r.publish(ctx, store, name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "published %s at revision %d\n", name, rev)

				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "plan name")
	cmd.Flags().StringVar(&bucket, "bucket", "", "KV bucket (default ndspace-plans)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newFetchCmd(flags *globalFlags) *cobra.Command {
	var (
		name     string
		bucket   string
		workerID int
	)

	cmd := &cobra.Command{
		Use:     "fetch",
		Short:   "print one worker's slice of a published plan",
		Example: `ndspace fetch --name heat-2d --worker 2`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withStore(cmd.Context(), flags, cmd, bucket, func(ctx context.Context, store *planstore.Store) error {
				rec, err := store.Get(ctx, name)
				if err != nil {
					return err
				}
				b, err := store.Slice(ctx, name, workerID)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "plan %s rev %d: worker %d of %d owns [%d,%d) of dimension %d\n",
					name, rec.Revision, workerID, rec.Workers, b.Start, b.Limit, rec.SplitDimension)

				return nil
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "plan name")
	cmd.Flags().StringVar(&bucket, "bucket", "", "KV bucket (default ndspace-plans)")
	cmd.Flags().IntVarP(&workerID, "worker", "w", 0, "worker id")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func withStore(
	ctx context.Context,
	flags *globalFlags,
	cmd *cobra.Command,
	bucket string,
	fn func(ctx context.Context, store *planstore.Store) error,
) error {
	nc, err := nats.Connect(flags.natsURL, nats.Name("ndspace-cli"), nats.Timeout(5*time.Second))
	if err != nil {
		return fmt.Errorf("connect to NATS: %w", err)
	}
	defer nc.Close()

	js, err := jetstream.New(nc)
	if err != nil {
		return fmt.Errorf("create JetStream context: %w", err)
	}

	cfg := planstore.DefaultConfig()
	if bucket != "" {
		cfg.Bucket = bucket
	}

	store, err := planstore.New(ctx, js, cfg, planstore.WithLogger(flags.logger(cmd)))
	if err != nil {
		return err
	}

	return fn(ctx, store)
}
