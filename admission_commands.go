package main

import (
	"context"
	"strconv"

	"github.com/nonsonwune/rankmatch/admission"
	"github.com/nonsonwune/rankmatch/rankdata"
	"github.com/nonsonwune/rankmatch/serrors"
	"github.com/spf13/cobra"
)

// catalog loads the cutoffs of the configured prior year.
func (a *app) catalog(ctx context.Context) (*admission.Catalog, error) {
	s, closeStore, err := a.openStore(ctx)
	if err != nil {
		return nil, err
	}
	defer closeStore()

	cutoffs, err := s.AdmissionCutoffs(ctx, a.cfg.Analysis.PriorYear)
	if err != nil {
		return nil, err
	}

	return admission.NewCatalog(cutoffs), nil
}

func institutionsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "institutions",
		Short: "Lists institutions with admission cutoffs",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			catalog, err := a.catalog(cmd.Context())
			if err != nil {
				return err
			}
			institutions := catalog.Institutions()
			if len(institutions) == 0 {
				note(w, "No admission cutoffs for %d.", a.cfg.Analysis.PriorYear)
				return nil
			}

			heading(w, "Institutions (%d cutoffs)", a.cfg.Analysis.PriorYear)
			table := newTable(w, "#", "Institution", "Groups")
			for i, inst := range institutions {
				table.Append([]string{strconv.Itoa(i + 1), inst, strconv.Itoa(len(catalog.Groups(inst)))})
			}
			table.Render()

			return nil
		},
	}
}

func groupsCommand(a *app) *cobra.Command {
	var institution string

	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Lists the program groups of an institution",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()

			catalog, err := a.catalog(cmd.Context())
			if err != nil {
				return err
			}
			groups := catalog.Groups(institution)
			if len(groups) == 0 {
				return serrors.With(serrors.ErrNotFound, "no program groups for institution %q", institution)
			}

			heading(w, "%s", institution)
			table := newTable(w, "Group", "Programs")
			for _, g := range groups {
				table.Append([]string{g, strconv.Itoa(len(catalog.Programs(institution, g)))})
			}
			table.Render()

			return nil
		},
	}
	cmd.Flags().StringVarP(&institution, "institution", "i", "", "Institution name")
	_ = cmd.MarkFlagRequired("institution")

	return cmd
}

func probabilityCommand(a *app) *cobra.Command {
	var (
		scoreArg    string
		institution string
		group       string
	)

	cmd := &cobra.Command{
		Use:   "probability",
		Short: "Estimates admission chances for every program of a group",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			w := cmd.OutOrStdout()

			score, err := rankdata.ParseScore(scoreArg)
			if err != nil {
				return err
			}

			s, closeStore, err := a.openStore(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			tables, err := a.loadTables(ctx, s)
			if err != nil {
				return err
			}
			cutoffs, err := s.AdmissionCutoffs(ctx, a.cfg.Analysis.PriorYear)
			if err != nil {
				return err
			}
			programs := admission.NewCatalog(cutoffs).Programs(institution, group)
			if len(programs) == 0 {
				return serrors.With(serrors.ErrNotFound, "no programs for institution %q group %q", institution, group)
			}

			sourceYear := a.cfg.Analysis.SourceYear
			rank, err := admission.CandidateRank(tables, sourceYear, score)
			if err != nil {
				return err
			}

			heading(w, "%s, group %s: score %d in %d (rank %d) against %d cutoffs",
				institution, group, score, sourceYear, rank, a.cfg.Analysis.PriorYear)
			renderOutcomes(w, admission.Evaluate(ctx, tables, rank, programs))

			return nil
		},
	}
	cmd.Flags().StringVarP(&scoreArg, "score", "s", "", "Candidate score")
	cmd.Flags().StringVarP(&institution, "institution", "i", "", "Institution name")
	cmd.Flags().StringVarP(&group, "group", "g", "", "Program group")
	_ = cmd.MarkFlagRequired("score")
	_ = cmd.MarkFlagRequired("institution")
	_ = cmd.MarkFlagRequired("group")

	return cmd
}
