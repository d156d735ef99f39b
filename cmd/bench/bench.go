package bench

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Kirov7/RidDB"
	"github.com/Kirov7/RidDB/cmd/root"
	"github.com/Kirov7/RidDB/meta"
	"github.com/Kirov7/RidDB/public/utils/gen"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var cmdCount int
var cmdOrder string
var cmdSeed uint64

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Measure the comparisons index lookups cost",
	Long:  `bench inserts generated records in sorted or random id order and reports the key comparisons of id lookups, id ranges and last name prefix searches.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, logger, err := root.NewEngine()
		if err != nil {
			return err
		}
		defer logger.Sync()
		opt := engine.Options()
		_ = engine.Close()

		report, err := Run(opt, cmdCount, cmdOrder, cmdSeed)
		if err != nil {
			return err
		}
		report.Print(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	benchCmd.Flags().IntVarP(&cmdCount, "count", "n", 10000, "Number of records to insert")
	benchCmd.Flags().StringVarP(&cmdOrder, "order", "o", "random", "Insertion order of ids (sorted/random)")
	benchCmd.Flags().Uint64VarP(&cmdSeed, "seed", "s", 1, "Seed of the generated records")
	root.AddCommand(benchCmd)
}

type Report struct {
	IdIndex   string
	NameIndex string
	Order     string
	Count     int

	FindAvg  float64
	FindMax  int
	RangeCmp int
	RangeLen int

	Prefix    string
	PrefixCmp int
	PrefixLen int
}

// Run fill a fresh engine built from opt and measure its lookups
func Run(opt RidDB.Options, n int, order string, seed uint64) (*Report, error) {
	if n <= 0 {
		return nil, errors.Errorf("count must be positive, got %d", n)
	}
	var ids []int
	switch order {
	case "sorted":
		ids = gen.SortedIds(n)
	case "random":
		ids = gen.RandomIds(n, seed)
	default:
		return nil, errors.Errorf("unknown order %q", order)
	}

	opt.LuaPoolSize = 0
	engine, err := RidDB.NewEngine(opt)
	if err != nil {
		return nil, err
	}
	defer engine.Close()

	records := gen.RandomRecords(ids, seed)
	for _, rec := range records {
		if _, err := engine.InsertRecord(rec); err != nil {
			return nil, err
		}
	}

	report := &Report{
		IdIndex:   meta.IndexTypeName(opt.IdIndexType),
		NameIndex: meta.IndexTypeName(opt.NameIndexType),
		Order:     order,
		Count:     n,
	}

	total := 0
	for _, id := range ids {
		_, cmp, _ := engine.FindById(id)
		total += cmp
		if cmp > report.FindMax {
			report.FindMax = cmp
		}
	}
	report.FindAvg = float64(total) / float64(n)

	lo := n / 4
	hi := lo + n/10
	found, cmp := engine.RangeById(lo, hi)
	report.RangeCmp, report.RangeLen = cmp, len(found)

	last := records[0].Last
	report.Prefix = last[:len(last)/2+1]
	found, cmp = engine.PrefixByLast(report.Prefix)
	report.PrefixCmp, report.PrefixLen = cmp, len(found)
	return report, nil
}

func (r *Report) Print(out io.Writer) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "index\tid=%s name=%s\n", r.IdIndex, r.NameIndex)
	fmt.Fprintf(w, "records\t%d inserted in %s order\n", r.Count, r.Order)
	fmt.Fprintf(w, "find\tavg %.2f max %d comparisons\n", r.FindAvg, r.FindMax)
	fmt.Fprintf(w, "range\t%d records, %d comparisons\n", r.RangeLen, r.RangeCmp)
	fmt.Fprintf(w, "prefix %q\t%d records, %d comparisons\n", r.Prefix, r.PrefixLen, r.PrefixCmp)
	w.Flush()
}
