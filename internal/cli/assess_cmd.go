package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"greenlight/internal/cli/formatter"
	"greenlight/internal/domain"
	"greenlight/internal/importer"
)

func newAssessCmd(app *App) *cobra.Command {
	var (
		title        string
		shootContext string
		country      string
		territory    string
		termYears    int

		days        int
		movesPerDay int
		intExtMix   bool

		deliverables []string

		technical      bool
		heroProduct    bool
		vfxLight       bool
		vfxHeavy       bool
		fixInPost      bool
		multiHero      bool
		specialEquip   bool
		children       bool
		childrenUnder5 bool

		numberEarly        bool
		procurementEarly   bool
		agencyStakeholders bool
		clientOnSet        bool

		totalBudget      float64
		productionBudget float64
		postBudget       float64
		talentBudget     float64
		contingency      float64
		otAllowed        bool

		breakdownPath string

		studioAvailable bool
		mocoAlternative bool
		secondUnit      bool
		experiencedCrew bool
		nearbyLocations bool
	)

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Run a feasibility assessment and save the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := domain.AssessmentInput{
				ShootingContext: domain.ShootingContext(strings.ToUpper(shootContext)),
				UsageTermYears:  termYears,
				InteriorExteriorMix: intExtMix,
				Complexity: domain.ComplexityToggles{
					Technical:          technical,
					HeroProduct:        heroProduct,
					VFXLight:           vfxLight,
					VFXHeavy:           vfxHeavy,
					FixInPost:          fixInPost,
					MultipleHeroTalent: multiHero,
					SpecialEquipment:   specialEquip,
					ChildrenInvolved:   children || childrenUnder5,
					ChildrenUnder5:     childrenUnder5,
				},
				Politics: domain.PoliticsToggles{
					NumberBeforeBoardsLocked:   numberEarly,
					ProcurementInvolvedEarly:   procurementEarly,
					MultipleAgencyStakeholders: agencyStakeholders,
					ClientOnSet:                clientOnSet,
				},
				Assumptions: domain.ProductionAssumptions{
					Moco:                domain.MocoAlternatives{Enabled: mocoAlternative},
					SecondUnitAvailable: secondUnit,
					ExperiencedCrew:     experiencedCrew,
					NearbyLocations:     nearbyLocations,
					StudioAvailable:     studioAvailable,
				},
			}

			switch in.ShootingContext {
			case domain.ContextUK, domain.ContextEU:
			default:
				return fmt.Errorf("invalid --context %q (expected UK or EU)", shootContext)
			}

			if in.ShootingContext == domain.ContextEU {
				if country == "" {
					country = string(domain.EUAverage)
				}
				if !domain.ValidEUCountries[country] {
					return fmt.Errorf("invalid --country %q", country)
				}
				in.EUCountry = domain.EUCountry(country)
			}

			switch territory {
			case "UK":
				in.UsageTerritory = domain.UsageUK
			case "US":
				in.UsageTerritory = domain.UsageUS
			case "Worldwide", "WW":
				in.UsageTerritory = domain.UsageWorldwide
			case "":
			default:
				return fmt.Errorf("invalid --territory %q (expected UK, US or Worldwide)", territory)
			}

			var err error
			if in.Deliverables, err = parseDeliverables(deliverables); err != nil {
				return err
			}

			if cmd.Flags().Changed("days") {
				in.ProposedShootDays = domain.IntPtr(days)
			}
			if cmd.Flags().Changed("moves-per-day") {
				in.CompanyMovesPerDay = domain.IntPtr(movesPerDay)
			}

			if cmd.Flags().Changed("budget") {
				in.Budget.TotalBudget = domain.Float64Ptr(totalBudget)
			}
			if cmd.Flags().Changed("production-budget") {
				in.Budget.ProductionBudget = domain.Float64Ptr(productionBudget)
			}
			if cmd.Flags().Changed("post-budget") {
				in.Budget.PostBudget = domain.Float64Ptr(postBudget)
			}
			if cmd.Flags().Changed("talent-budget") {
				in.Budget.TalentBudget = domain.Float64Ptr(talentBudget)
			}
			if cmd.Flags().Changed("contingency") {
				in.Budget.ContingencyPercent = domain.Float64Ptr(contingency)
				in.Budget.HasContingency = true
			}
			in.Budget.OTAllowed = otAllowed

			if breakdownPath != "" {
				breakdown, errs := importer.LoadBreakdownFile(breakdownPath)
				if len(errs) > 0 {
					for _, e := range errs {
						fmt.Fprintln(cmd.ErrOrStderr(), formatter.StyleRed.Render("  "+e.Error()))
					}
					return fmt.Errorf("breakdown file %s failed validation (%d error(s))", breakdownPath, len(errs))
				}
				in.Breakdown = domain.Breakdown{AI: breakdown}
			}

			res, err := app.Assessments.Assess(context.Background(), title, in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.RenderAssessment(title, res.Record.Output))
			fmt.Fprintf(out, "\nSaved as %s\n", res.Record.ID)
			if res.Previous != nil {
				fmt.Fprintln(out, formatter.Dim(fmt.Sprintf(
					"Identical input previously assessed as %s on %s (%s).",
					res.Previous.Verdict, res.Previous.CreatedAt, res.Previous.ID)))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Title to save the assessment under")
	cmd.Flags().StringVar(&shootContext, "context", "UK", "Shooting context (UK|EU)")
	cmd.Flags().StringVar(&country, "country", "", "EU country (Poland|Bulgaria|Czech|Serbia|Georgia|Spain|Portugal|EU_Average)")
	cmd.Flags().StringVar(&territory, "territory", "UK", "Usage territory (UK|US|Worldwide)")
	cmd.Flags().IntVar(&termYears, "term-years", 1, "Usage term in years")

	cmd.Flags().IntVar(&days, "days", 0, "Proposed shoot days")
	cmd.Flags().IntVar(&movesPerDay, "moves-per-day", 0, "Planned company moves per day")
	cmd.Flags().BoolVar(&intExtMix, "int-ext-mix", false, "Script mixes interiors and exteriors")

	cmd.Flags().StringSliceVar(&deliverables, "deliver", nil, "Deliverables (tvc30,tvc15,tvc10,social,vertical,stills,bts)")

	cmd.Flags().BoolVar(&technical, "technical", false, "Technically complex shots")
	cmd.Flags().BoolVar(&heroProduct, "hero-product", false, "Hero product moments")
	cmd.Flags().BoolVar(&vfxLight, "vfx-light", false, "Light VFX expected")
	cmd.Flags().BoolVar(&vfxHeavy, "vfx-heavy", false, "Heavy VFX expected")
	cmd.Flags().BoolVar(&fixInPost, "fix-in-post", false, "Plan relies on fixing in post")
	cmd.Flags().BoolVar(&multiHero, "multi-hero", false, "Multiple hero talent")
	cmd.Flags().BoolVar(&specialEquip, "special-equipment", false, "Special equipment required")
	cmd.Flags().BoolVar(&children, "children", false, "Children involved")
	cmd.Flags().BoolVar(&childrenUnder5, "children-under5", false, "Children under five involved")

	cmd.Flags().BoolVar(&numberEarly, "number-early", false, "A number was given before boards locked")
	cmd.Flags().BoolVar(&procurementEarly, "procurement-early", false, "Procurement involved early")
	cmd.Flags().BoolVar(&agencyStakeholders, "agency-stakeholders", false, "Multiple agency stakeholders")
	cmd.Flags().BoolVar(&clientOnSet, "client-on-set", false, "Client expected on set")

	cmd.Flags().Float64Var(&totalBudget, "budget", 0, "Total budget")
	cmd.Flags().Float64Var(&productionBudget, "production-budget", 0, "Production budget")
	cmd.Flags().Float64Var(&postBudget, "post-budget", 0, "Post-production budget")
	cmd.Flags().Float64Var(&talentBudget, "talent-budget", 0, "Talent budget")
	cmd.Flags().Float64Var(&contingency, "contingency", 0, "Contingency percent")
	cmd.Flags().BoolVar(&otAllowed, "ot-allowed", false, "Overtime is priced in")

	cmd.Flags().StringVar(&breakdownPath, "breakdown", "", "Path to a breakdown JSON file")

	cmd.Flags().BoolVar(&studioAvailable, "studio", false, "Studio confirmed available")
	cmd.Flags().BoolVar(&mocoAlternative, "moco-alt", false, "VFX alternative agreed for motion control")
	cmd.Flags().BoolVar(&secondUnit, "second-unit", false, "Second unit available")
	cmd.Flags().BoolVar(&experiencedCrew, "experienced-crew", false, "Crew has shot this kind of job before")
	cmd.Flags().BoolVar(&nearbyLocations, "nearby-locations", false, "Locations confirmed close together")

	return cmd
}

func parseDeliverables(names []string) (domain.Deliverables, error) {
	var d domain.Deliverables
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "tvc30":
			d.TVC30 = true
		case "tvc15":
			d.TVC15 = true
		case "tvc10":
			d.TVC10 = true
		case "social":
			d.SocialCutdowns = true
		case "vertical", "916":
			d.Vertical916 = true
		case "stills":
			d.StillGrabs = true
		case "bts":
			d.BehindTheScenes = true
		case "":
		default:
			return d, fmt.Errorf("unknown deliverable %q", name)
		}
	}
	return d, nil
}
