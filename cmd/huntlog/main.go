package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"huntlog/internal/bootstrap"
	analyticsdomain "huntlog/internal/modules/analytics/domain"
	analyticsdto "huntlog/internal/modules/analytics/dto"
	huntdto "huntlog/internal/modules/hunt/dto"
	"huntlog/internal/platform/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "huntlog",
		Short:         "Hunt session log and analytics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data", ".", "data directory holding huntlog.yaml and the database")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newParseCmd(&dataDir))
	root.AddCommand(newImportCmd(&dataDir))
	root.AddCommand(newHuntCmd(&dataDir))
	root.AddCommand(newCharacterCmd(&dataDir))
	root.AddCommand(newLocationCmd(&dataDir))
	root.AddCommand(newAnalyzeCmd(&dataDir))
	root.AddCommand(newTimelineCmd(&dataDir))
	root.AddCommand(newCheckCmd(&dataDir))
	root.AddCommand(newWatchCmd(&dataDir))
	root.AddCommand(newConfigCmd(&dataDir))
	return root
}

func loadApp(dataDir string) (*bootstrap.App, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

// withApp opens the app for one command and closes the database afterwards.
func withApp(dataDir string, fn func(app *bootstrap.App) error) error {
	app, err := loadApp(dataDir)
	if err != nil {
		return err
	}
	defer func() { _ = app.Close() }()
	return fn(app)
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the huntlog terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			return withApp(*dataDir, bootstrap.RunTUI)
		},
	}
}

func newParseCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Extract a report without storing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read report: %w", err)
			}
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.HuntCLI.Parse(cmd.Context(), string(raw))
				if err != nil {
					return err
				}
				w := cmd.OutOrStdout()
				_, _ = fmt.Fprintf(w, "session: %t\nfrom: %s %s\nto: %s\nduration: %dmin\n",
					out.IsSession, dashIfEmpty(out.Date), dashIfEmpty(out.StartTime), dashIfEmpty(out.EndTime), out.DurationMin)
				_, _ = fmt.Fprintf(w, "raw_xp: %d\nxp: %d\nloot: %d\nsupplies: %d\nbalance: %d\npayment: %d\ndamage: %d\nhealing: %d\n",
					out.RawXP, out.XP, out.Loot, out.Supplies, out.Balance, out.Payment, out.Damage, out.Healing)
				printMonsters(w, out.Monsters)
				return nil
			})
		},
	}
}

func newImportCmd(dataDir *string) *cobra.Command {
	var character, location string
	var allowDuplicates, stdin bool

	cmd := &cobra.Command{
		Use:   "import [file...]",
		Short: "Import hunt session reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !stdin {
				return fmt.Errorf("at least one file or --stdin is required")
			}
			return withApp(*dataDir, func(app *bootstrap.App) error {
				var (
					out huntdto.ImportOutput
					err error
				)
				if stdin {
					raw, readErr := io.ReadAll(cmd.InOrStdin())
					if readErr != nil {
						return fmt.Errorf("read stdin: %w", readErr)
					}
					out, err = app.HuntCLI.ImportText(cmd.Context(), "stdin", string(raw), character, location, allowDuplicates)
				} else {
					out, err = app.HuntCLI.ImportFiles(cmd.Context(), args, character, location, allowDuplicates)
				}
				if err != nil {
					return err
				}
				printImport(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&character, "character", "", "character name (defaults to the roster default)")
	cmd.Flags().StringVar(&location, "location", "", "hunting location")
	cmd.Flags().BoolVar(&allowDuplicates, "allow-duplicates", false, "store reports already present")
	cmd.Flags().BoolVar(&stdin, "stdin", false, "read a single report from standard input")
	return cmd
}

type filterFlags struct {
	character string
	location  string
	from      string
	to        string
}

func (f *filterFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.character, "character", "", "character name, or all")
	cmd.Flags().StringVar(&f.location, "location", "", "location substring")
	cmd.Flags().StringVar(&f.from, "from", "", "start date (YYYY-MM-DD or DD-MM-YYYY)")
	cmd.Flags().StringVar(&f.to, "to", "", "end date (YYYY-MM-DD or DD-MM-YYYY)")
}

func (f filterFlags) input() (huntdto.FilterInput, error) {
	from, err := analyticsdomain.NormalizeDate(f.from)
	if err != nil {
		return huntdto.FilterInput{}, err
	}
	to, err := analyticsdomain.NormalizeDate(f.to)
	if err != nil {
		return huntdto.FilterInput{}, err
	}
	return huntdto.FilterInput{Character: f.character, LocationLike: f.location, DateStart: from, DateEnd: to}, nil
}

func newHuntCmd(dataDir *string) *cobra.Command {
	hunt := &cobra.Command{Use: "hunt", Short: "Browse and edit stored hunts"}

	var listFilter filterFlags
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List hunts, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := listFilter.input()
			if err != nil {
				return err
			}
			return withApp(*dataDir, func(app *bootstrap.App) error {
				hunts, err := app.HuntCLI.List(cmd.Context(), filter)
				if err != nil {
					return err
				}
				if len(hunts) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no hunts")
					return nil
				}
				for _, h := range hunts {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s %s\t%s\t%s\t%dmin\traw_xp=%d\tbalance=%d\n",
						h.ID, dashIfEmpty(h.Date), dashIfEmpty(h.StartTime), h.Character, h.Location, h.DurationMin, h.RawXP, h.Balance)
				}
				return nil
			})
		},
	}
	listFilter.bind(listCmd)

	var showID int64
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show one hunt",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				h, err := app.HuntCLI.Get(cmd.Context(), showID)
				if err != nil {
					return err
				}
				printHunt(cmd.OutOrStdout(), h)
				return nil
			})
		},
	}
	showCmd.Flags().Int64Var(&showID, "id", 0, "hunt id")
	_ = showCmd.MarkFlagRequired("id")

	hunt.AddCommand(listCmd, showCmd, newHuntEditCmd(dataDir), newHuntBatchEditCmd(dataDir),
		newHuntDeleteCmd(dataDir), newHuntExportCmd(dataDir), newHuntKillsCmd(dataDir))
	return hunt
}

func newHuntEditCmd(dataDir *string) *cobra.Command {
	var huntID int64
	var character, location, date, start, end string
	var duration int
	var rawXP, xp, loot, supplies, balance, damage, healing int64

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit fields of one hunt",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				current, err := app.HuntCLI.Get(cmd.Context(), huntID)
				if err != nil {
					return err
				}
				input := huntdto.EditInput{
					ID: current.ID, Character: current.Character, Location: current.Location,
					Date: current.Date, StartTime: current.StartTime, EndTime: current.EndTime,
					DurationMin: current.DurationMin, RawXP: current.RawXP, XP: current.XP,
					Loot: current.Loot, Supplies: current.Supplies, Balance: current.Balance,
					Damage: current.Damage, Healing: current.Healing,
				}
				flags := cmd.Flags()
				setString := func(name, value string, dst *string) {
					if flags.Changed(name) {
						*dst = value
					}
				}
				setInt := func(name string, value int64, dst *int64) {
					if flags.Changed(name) {
						*dst = value
					}
				}
				setString("character", character, &input.Character)
				setString("location", location, &input.Location)
				setString("date", date, &input.Date)
				setString("start", start, &input.StartTime)
				setString("end", end, &input.EndTime)
				if flags.Changed("duration") {
					input.DurationMin = duration
				}
				setInt("raw-xp", rawXP, &input.RawXP)
				setInt("xp", xp, &input.XP)
				setInt("loot", loot, &input.Loot)
				setInt("supplies", supplies, &input.Supplies)
				setInt("balance", balance, &input.Balance)
				setInt("damage", damage, &input.Damage)
				setInt("healing", healing, &input.Healing)
				if input.Date, err = analyticsdomain.NormalizeDate(input.Date); err != nil {
					return err
				}

				updated, err := app.HuntCLI.Update(cmd.Context(), input)
				if err != nil {
					return err
				}
				printHunt(cmd.OutOrStdout(), updated)
				return nil
			})
		},
	}
	cmd.Flags().Int64Var(&huntID, "id", 0, "hunt id")
	_ = cmd.MarkFlagRequired("id")
	cmd.Flags().StringVar(&character, "character", "", "character name")
	cmd.Flags().StringVar(&location, "location", "", "location")
	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD or DD-MM-YYYY)")
	cmd.Flags().StringVar(&start, "start", "", "start time HH:MM:SS")
	cmd.Flags().StringVar(&end, "end", "", "end time HH:MM:SS")
	cmd.Flags().IntVar(&duration, "duration", 0, "duration in minutes")
	cmd.Flags().Int64Var(&rawXP, "raw-xp", 0, "raw XP gain")
	cmd.Flags().Int64Var(&xp, "xp", 0, "XP gain")
	cmd.Flags().Int64Var(&loot, "loot", 0, "loot value")
	cmd.Flags().Int64Var(&supplies, "supplies", 0, "supplies spent")
	cmd.Flags().Int64Var(&balance, "balance", 0, "balance")
	cmd.Flags().Int64Var(&damage, "damage", 0, "damage dealt")
	cmd.Flags().Int64Var(&healing, "healing", 0, "healing done")
	return cmd
}

func newHuntBatchEditCmd(dataDir *string) *cobra.Command {
	var ids []int64
	var character, location string

	cmd := &cobra.Command{
		Use:   "batch-edit",
		Short: "Set character or location on several hunts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var charPtr, locPtr *string
			if cmd.Flags().Changed("character") {
				charPtr = &character
			}
			if cmd.Flags().Changed("location") {
				locPtr = &location
			}
			return withApp(*dataDir, func(app *bootstrap.App) error {
				n, err := app.HuntCLI.BatchUpdate(cmd.Context(), ids, charPtr, locPtr)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "updated %d hunts\n", n)
				return nil
			})
		},
	}
	cmd.Flags().Int64SliceVar(&ids, "ids", nil, "comma separated hunt ids")
	_ = cmd.MarkFlagRequired("ids")
	cmd.Flags().StringVar(&character, "character", "", "new character name")
	cmd.Flags().StringVar(&location, "location", "", "new location")
	return cmd
}

func newHuntDeleteCmd(dataDir *string) *cobra.Command {
	var ids []int64
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete hunts and their kills",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				n, err := app.HuntCLI.Delete(cmd.Context(), ids)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %d hunts\n", n)
				return nil
			})
		},
	}
	cmd.Flags().Int64SliceVar(&ids, "ids", nil, "comma separated hunt ids")
	_ = cmd.MarkFlagRequired("ids")
	return cmd
}

func newHuntExportCmd(dataDir *string) *cobra.Command {
	var ids []int64
	var dir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the original report text of hunts to files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				target := dir
				if target == "" {
					target = app.Config.LogDir
				}
				if target == "" {
					return fmt.Errorf("--dir is required when log_dir is not configured")
				}
				out, err := app.HuntCLI.Export(cmd.Context(), ids, target)
				if err != nil {
					return err
				}
				for _, p := range out.Paths {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), p)
				}
				return nil
			})
		},
	}
	cmd.Flags().Int64SliceVar(&ids, "ids", nil, "comma separated hunt ids")
	_ = cmd.MarkFlagRequired("ids")
	cmd.Flags().StringVar(&dir, "dir", "", "target directory (defaults to log_dir)")
	return cmd
}

func newHuntKillsCmd(dataDir *string) *cobra.Command {
	var filter filterFlags
	cmd := &cobra.Command{
		Use:   "kills",
		Short: "Total kills per creature",
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := filter.input()
			if err != nil {
				return err
			}
			return withApp(*dataDir, func(app *bootstrap.App) error {
				kills, err := app.HuntCLI.Kills(cmd.Context(), input)
				if err != nil {
					return err
				}
				if len(kills) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no kills")
					return nil
				}
				for _, k := range kills {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", k.Name, k.Total)
				}
				return nil
			})
		},
	}
	filter.bind(cmd)
	return cmd
}

func newCharacterCmd(dataDir *string) *cobra.Command {
	character := &cobra.Command{Use: "character", Short: "Manage the character roster"}

	character.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List characters, default first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				chars, err := app.HuntCLI.Characters(cmd.Context())
				if err != nil {
					return err
				}
				for _, c := range chars {
					marker := ""
					if c.IsDefault {
						marker = "\tdefault"
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", c.Name, marker)
				}
				return nil
			})
		},
	})
	character.AddCommand(nameCmd(dataDir, "add", "Add a character", "added", func(ctx context.Context, app *bootstrap.App, name string) error {
		return app.HuntCLI.AddCharacter(ctx, name)
	}))
	character.AddCommand(nameCmd(dataDir, "delete", "Delete a character", "deleted", func(ctx context.Context, app *bootstrap.App, name string) error {
		return app.HuntCLI.DeleteCharacter(ctx, name)
	}))
	character.AddCommand(nameCmd(dataDir, "default", "Make a character the default", "default set to", func(ctx context.Context, app *bootstrap.App, name string) error {
		return app.HuntCLI.SetDefaultCharacter(ctx, name)
	}))
	return character
}

func newLocationCmd(dataDir *string) *cobra.Command {
	location := &cobra.Command{Use: "location", Short: "Manage known locations"}

	location.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List locations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				locs, err := app.HuntCLI.Locations(cmd.Context())
				if err != nil {
					return err
				}
				for _, l := range locs {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), l)
				}
				return nil
			})
		},
	})
	location.AddCommand(nameCmd(dataDir, "add", "Add a location", "added", func(ctx context.Context, app *bootstrap.App, name string) error {
		return app.HuntCLI.AddLocation(ctx, name)
	}))
	location.AddCommand(nameCmd(dataDir, "delete", "Delete a location", "deleted", func(ctx context.Context, app *bootstrap.App, name string) error {
		return app.HuntCLI.DeleteLocation(ctx, name)
	}))
	return location
}

func nameCmd(dataDir *string, use, short, done string, fn func(context.Context, *bootstrap.App, string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <name>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				if err := fn(cmd.Context(), app, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", done, strings.TrimSpace(args[0]))
				return nil
			})
		},
	}
}

type analyzeFlags struct {
	character string
	from      string
	to        string
	period    string
	top       int
}

func (f *analyzeFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.character, "character", analyticsdomain.AllCharacters, "character name, or all")
	cmd.Flags().StringVar(&f.from, "from", "", "start date (YYYY-MM-DD or DD-MM-YYYY)")
	cmd.Flags().StringVar(&f.to, "to", "", "end date (YYYY-MM-DD or DD-MM-YYYY)")
	cmd.Flags().StringVar(&f.period, "period", "", "preset range: "+strings.Join(analyticsdomain.Periods, ", "))
}

func (f analyzeFlags) input() analyticsdto.AnalyzeInput {
	return analyticsdto.AnalyzeInput{Character: f.character, DateStart: f.from, DateEnd: f.to, Period: f.period, Top: f.top}
}

func newAnalyzeCmd(dataDir *string) *cobra.Command {
	var flags analyzeFlags
	var outPath string
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Summarise hunts for a character and period",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				if outPath != "" {
					saved, err := app.AnalyticsCLI.SaveReport(cmd.Context(), flags.input(), outPath)
					if err != nil {
						return err
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "report written to %s\n", saved.Path)
					return nil
				}
				out, err := app.AnalyticsCLI.Analyze(cmd.Context(), flags.input())
				if err != nil {
					return err
				}
				_, _ = fmt.Fprint(cmd.OutOrStdout(), out.Text)
				return nil
			})
		},
	}
	flags.bind(cmd)
	cmd.Flags().IntVar(&flags.top, "top", 0, "creatures to list (0 uses top_creatures)")
	cmd.Flags().StringVar(&outPath, "out", "", "write the report to a Markdown note")
	return cmd
}

func newTimelineCmd(dataDir *string) *cobra.Command {
	var flags analyzeFlags
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Per-hunt rates in chronological order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.AnalyticsCLI.Timeline(cmd.Context(), flags.input())
				if err != nil {
					return err
				}
				if len(out.Points) == 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no hunts")
					return nil
				}
				for _, p := range out.Points {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\traw_xp/h=%.0f\tbalance/h=%.0f\tsupplies/h=%.0f\n",
						dashIfEmpty(p.Date), dashIfEmpty(p.StartTime), p.RawXPPerHour, p.BalancePerHour, p.SuppliesPerHour)
				}
				return nil
			})
		},
	}
	flags.bind(cmd)
	return cmd
}

func newCheckCmd(dataDir *string) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "List reports in the log directory that are not stored yet",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				out, err := app.HuntCLI.Check(cmd.Context(), orConfigured(dir, app.Config.LogDir))
				if err != nil {
					return err
				}
				if len(out.Pending) == 0 {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "no new reports in %s\n", out.Dir)
					return nil
				}
				for _, p := range out.Pending {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), p)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "report directory (defaults to log_dir)")
	return cmd
}

func newWatchCmd(dataDir *string) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Import new reports as they appear in the log directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(*dataDir, func(app *bootstrap.App) error {
				target := orConfigured(dir, app.Config.LogDir)
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "watching %s (ctrl+c to stop)\n", target)
				err := app.HuntCLI.Watch(cmd.Context(), target, func(out huntdto.ImportOutput) {
					printImport(cmd.OutOrStdout(), out)
				})
				if err != nil && cmd.Context().Err() == nil {
					return err
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "report directory (defaults to log_dir)")
	return cmd
}

func newConfigCmd(dataDir *string) *cobra.Command {
	cfgCmd := &cobra.Command{Use: "config", Short: "Inspect and change configuration"}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New(*dataDir)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "file: %s\ndb_path: %s\nlog_dir: %s\nfallback_character: %s\ndefault_location: %s\nseed_character: %s\nlocale: %s\ntop_creatures: %d\nlog_level: %s\nlog_format: %s\n",
				config.Path(cfg.DataDir), cfg.DBPath, cfg.LogDir, cfg.FallbackCharacter, cfg.DefaultLocation,
				cfg.SeedCharacter, cfg.Locale, cfg.TopCreatures, cfg.LogLevel, cfg.LogFormat)
			return nil
		},
	})
	cfgCmd.AddCommand(&cobra.Command{
		Use:   "set-log-dir <path>",
		Short: "Remember the directory scanned by check and watch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.SetLogDir(*dataDir, args[0]); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "log_dir set to %s\n", args[0])
			return nil
		},
	})
	return cfgCmd
}

func printImport(w io.Writer, out huntdto.ImportOutput) {
	for _, r := range out.Results {
		switch {
		case r.Err != nil:
			_, _ = fmt.Fprintf(w, "%s\t%s\t%v\n", r.Status, r.Name, r.Err)
		case r.HuntID != 0:
			_, _ = fmt.Fprintf(w, "%s\t%s\tid=%d\n", r.Status, r.Name, r.HuntID)
		default:
			_, _ = fmt.Fprintf(w, "%s\t%s\n", r.Status, r.Name)
		}
	}
	_, _ = fmt.Fprintf(w, "run %s: imported=%d duplicates=%d rejected=%d failed=%d\n",
		out.RunID, out.Imported, out.Duplicates, out.Rejected, out.Failed)
}

func printHunt(w io.Writer, h huntdto.HuntOutput) {
	_, _ = fmt.Fprintf(w, "id: %d\ncharacter: %s\nlocation: %s\nfrom: %s %s\nto: %s\nduration: %dmin\n",
		h.ID, h.Character, h.Location, dashIfEmpty(h.Date), dashIfEmpty(h.StartTime), dashIfEmpty(h.EndTime), h.DurationMin)
	_, _ = fmt.Fprintf(w, "raw_xp: %d\nxp: %d\nloot: %d\nsupplies: %d\nbalance: %d\npayment: %d\ndamage: %d\nhealing: %d\n",
		h.RawXP, h.XP, h.Loot, h.Supplies, h.Balance, h.Payment, h.Damage, h.Healing)
	printMonsters(w, h.Monsters)
}

func printMonsters(w io.Writer, monsters []huntdto.MonsterOutput) {
	if len(monsters) == 0 {
		_, _ = fmt.Fprintln(w, "killed: none")
		return
	}
	_, _ = fmt.Fprintln(w, "killed:")
	for _, m := range monsters {
		_, _ = fmt.Fprintf(w, "  %d x %s\n", m.Count, m.Name)
	}
}

func orConfigured(flag, configured string) string {
	if flag != "" {
		return flag
	}
	return configured
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
