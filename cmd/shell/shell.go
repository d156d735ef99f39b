package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/Kirov7/RidDB"
	"github.com/Kirov7/RidDB/cmd/root"
	"github.com/Kirov7/RidDB/data"
	"github.com/Kirov7/RidDB/meta"
	"github.com/gofrs/flock"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var loadFile string

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive record shell",
	Long:  `Insert, look up, range scan, prefix search and delete records while watching the comparisons every index lookup costs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, logger, err := root.NewEngine()
		if err != nil {
			return err
		}
		defer logger.Sync()
		defer engine.Close()

		sh := New(engine, logger, cmd.OutOrStdout())
		if loadFile != "" {
			if err := sh.load(loadFile); err != nil {
				return err
			}
		}
		return sh.Run(cmd.Context(), cmd.InOrStdin())
	},
}

func init() {
	shellCmd.Flags().StringVarP(&loadFile, "load", "l", "", "CSV file of id,first,last rows to load at start (optional)")
	root.AddCommand(shellCmd)
}

const usage = `commands:
  insert <id> <first> <last>   add a record
  find <id>                    look a record up by id
  range <lo> <hi>              records with lo <= id <= hi
  prefix [p]                   records whose last name starts with p
  delete <id>                  delete a record
  load <file>                  insert the records of a csv file
  export <file>                write the live records to a csv file
  eval <lua>                   run a lua script
  stats                        heap and index sizes
  help                         this text
  quit                         leave the shell
`

type Shell struct {
	engine *RidDB.Engine
	logger *zap.Logger
	out    io.Writer
}

func New(engine *RidDB.Engine, logger *zap.Logger, out io.Writer) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{engine: engine, logger: logger, out: out}
}

// Run read commands from in until quit or end of input
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	if ctx == nil {
		ctx = context.Background()
	}
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(s.out, "Welcome to riddb, type 'help' for commands.")

	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		if err := s.Exec(ctx, line); err != nil {
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

// Exec run a single command line
func (s *Shell) Exec(ctx context.Context, line string) error {
	name, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	rest = strings.TrimSpace(rest)
	args := strings.Fields(rest)

	switch name {
	case "help":
		fmt.Fprint(s.out, usage)
	case "insert":
		if len(args) != 3 {
			return errors.New("usage: insert <id> <first> <last>")
		}
		id, err := parseInt(args[0])
		if err != nil {
			return err
		}
		if _, err := s.engine.InsertRecord(data.Record{Id: id, First: args[1], Last: args[2]}); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "inserted %d\n", id)
	case "find":
		if len(args) != 1 {
			return errors.New("usage: find <id>")
		}
		id, err := parseInt(args[0])
		if err != nil {
			return err
		}
		rec, cmp, ok := s.engine.FindById(id)
		if !ok {
			fmt.Fprintf(s.out, "not found (%d comparisons)\n", cmp)
			return nil
		}
		s.printRecords([]data.Record{rec}, cmp)
	case "range":
		if len(args) != 2 {
			return errors.New("usage: range <lo> <hi>")
		}
		lo, err := parseInt(args[0])
		if err != nil {
			return err
		}
		hi, err := parseInt(args[1])
		if err != nil {
			return err
		}
		records, cmp := s.engine.RangeById(lo, hi)
		s.printRecords(records, cmp)
	case "prefix":
		if len(args) > 1 {
			return errors.New("usage: prefix [p]")
		}
		records, cmp := s.engine.PrefixByLast(rest)
		s.printRecords(records, cmp)
	case "delete":
		if len(args) != 1 {
			return errors.New("usage: delete <id>")
		}
		id, err := parseInt(args[0])
		if err != nil {
			return err
		}
		if !s.engine.DeleteById(id) {
			fmt.Fprintf(s.out, "no record %d\n", id)
			return nil
		}
		fmt.Fprintf(s.out, "deleted %d\n", id)
	case "load":
		if len(args) != 1 {
			return errors.New("usage: load <file>")
		}
		return s.load(args[0])
	case "export":
		if len(args) != 1 {
			return errors.New("usage: export <file>")
		}
		return s.export(args[0])
	case "eval":
		if rest == "" {
			return errors.New("usage: eval <lua>")
		}
		cmd, err := s.engine.Eval(ctx, rest)
		if err != nil {
			return err
		}
		if records, err := cmd.AsRecords(); err == nil {
			s.printRecords(records, -1)
			return nil
		}
		fmt.Fprintf(s.out, "%v\n", cmd.Value)
	case "stats":
		opt := s.engine.Options()
		fmt.Fprintf(s.out, "heap slots: %d\nlive records: %d\nid index: %s\nname index: %s\n",
			s.engine.Len(), s.engine.Live(),
			meta.IndexTypeName(opt.IdIndexType), meta.IndexTypeName(opt.NameIndexType))
	default:
		return errors.Errorf("unknown command %q, type 'help'", name)
	}
	return nil
}

func (s *Shell) load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	records, err := data.ReadCSV(f)
	if err != nil {
		return errors.WithMessagef(err, "load %s", path)
	}
	batch := s.engine.NewBatch()
	for _, rec := range records {
		if err := batch.Put(rec); err != nil {
			return err
		}
	}
	n, err := batch.Commit()
	if err != nil {
		return errors.WithMessagef(err, "load %s", path)
	}
	s.logger.Info("records loaded", zap.String("file", path), zap.Int("count", n))
	fmt.Fprintf(s.out, "loaded %d records\n", n)
	return nil
}

func (s *Shell) export(path string) error {
	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return errors.Wrapf(err, "lock %s", path)
	}
	if !locked {
		return errors.Errorf("%s is being written by another process", path)
	}
	defer lock.Unlock()

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	records := s.engine.Records()
	if err := data.WriteCSV(f, records); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "close %s", path)
	}
	fmt.Fprintf(s.out, "exported %d records\n", len(records))
	return nil
}

// printRecords a negative cmp omits the comparison line
func (s *Shell) printRecords(records []data.Record, cmp int) {
	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFIRST\tLAST")
	for _, rec := range records {
		fmt.Fprintf(w, "%d\t%s\t%s\n", rec.Id, rec.First, rec.Last)
	}
	w.Flush()
	fmt.Fprintf(s.out, "%d records", len(records))
	if cmp >= 0 {
		fmt.Fprintf(s.out, ", %d comparisons", cmp)
	}
	fmt.Fprintln(s.out)
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Errorf("%q is not an integer", s)
	}
	return n, nil
}
