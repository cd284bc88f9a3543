// Package console implements the interactive menu session and the report
// formatters shared with the non-interactive commands.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/farmstock/internal/herd"
	"github.com/mesh-intelligence/farmstock/internal/metrics"
	"github.com/mesh-intelligence/farmstock/internal/query"
	"github.com/mesh-intelligence/farmstock/pkg/types"
)

const mainMenu = `Choose an option:
1. List all farm animals
2. Query farm livestock
3. Insert new farm animal
4. Delete farm animal
5. Print Metrics
6. Edit Record
7. Clear Console
8. Exit`

const queryMenu = `Choose a query option:
1. Query by ID
2. Query by colour
3. Query by type
4. Query by weight threshold`

const insertMenu = `Choose an animal type to insert:
1. Cow
2. Goat
3. Sheep`

// clearScreen moves the cursor home and clears the terminal.
const clearScreen = "\033[H\033[2J"

// Options configures a Session.
type Options struct {
	Repo      *herd.Repository
	Prices    types.PriceSource
	In        io.Reader
	Out       io.Writer
	Formatter Formatter
	Log       *zap.Logger
}

// Session drives the numbered menu until the operator exits or input ends.
// Every operation handles its own errors and returns to the menu.
type Session struct {
	repo   *herd.Repository
	prices types.PriceSource
	in     *bufio.Scanner
	out    io.Writer
	f      Formatter
	log    *zap.Logger
}

// NewSession returns a session reading from opts.In and writing to opts.Out.
func NewSession(opts Options) *Session {
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	f := opts.Formatter
	if f.Currency == "" {
		f = NewFormatter("")
	}
	return &Session{
		repo:   opts.Repo,
		prices: opts.Prices,
		in:     bufio.NewScanner(opts.In),
		out:    opts.Out,
		f:      f,
		log:    log.Named("console"),
	}
}

// Run shows the main menu in a loop. It returns nil when the operator picks
// Exit or the input ends, and an error only if reading input fails.
func (s *Session) Run() error {
	actions := map[int]func() error{
		1: s.listAll,
		2: s.queryMenu,
		3: s.insertMenu,
		4: s.deleteByID,
		5: s.printMetrics,
		6: s.editRecord,
		7: s.clear,
	}

	for {
		fmt.Fprintln(s.out, mainMenu)
		line, err := s.readLine()
		if err != nil {
			return endOfInput(err)
		}

		choice, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid input. Please enter a valid option.")
			continue
		}
		if choice == 8 {
			s.log.Debug("exit selected")
			return nil
		}
		action, ok := actions[choice]
		if !ok {
			fmt.Fprintln(s.out, "Invalid choice. Please select a valid option.")
			continue
		}

		s.log.Debug("menu action", zap.Int("choice", choice))
		if err := action(); err != nil {
			return endOfInput(err)
		}
	}
}

// endOfInput turns io.EOF into a clean exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// ask prints prompt and reads the answer.
func (s *Session) ask(prompt string) (string, error) {
	fmt.Fprintln(s.out, prompt)
	return s.readLine()
}

// askFloat reads a number. ok is false, after printing a message naming
// field, when the answer does not parse.
func (s *Session) askFloat(prompt, field string) (v float64, ok bool, err error) {
	line, err := s.ask(prompt)
	if err != nil {
		return 0, false, err
	}
	v, perr := parseNumber(line)
	if perr != nil {
		fmt.Fprintf(s.out, "Invalid input for %s. Please enter a valid number.\n", field)
		return 0, false, nil
	}
	return v, true, nil
}

// parseNumber parses a finite decimal number; NaN and infinities are
// rejected like any other malformed input.
func parseNumber(line string) (float64, error) {
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, err
	}
	if !types.IsFinite(v) {
		return 0, fmt.Errorf("%w: %q is not a finite number", types.ErrValidation, line)
	}
	return v, nil
}

// choose shows menu and returns the picked number in [1, n].
func (s *Session) choose(menu string, n int) (choice int, ok bool, err error) {
	line, err := s.ask(menu)
	if err != nil {
		return 0, false, err
	}
	choice, perr := strconv.Atoi(line)
	if perr != nil {
		fmt.Fprintln(s.out, "Invalid input. Please enter a valid option.")
		return 0, false, nil
	}
	if choice < 1 || choice > n {
		fmt.Fprintln(s.out, "Invalid choice. Please select a valid option.")
		return 0, false, nil
	}
	return choice, true, nil
}

// reportError prints err in operator wording.
func (s *Session) reportError(err error) {
	switch {
	case types.IsStorage(err):
		s.log.Warn("storage operation failed", zap.Error(err))
		fmt.Fprintf(s.out, "Database Error: %v\n", err)
	case types.IsValidation(err):
		fmt.Fprintf(s.out, "Invalid input: %v\n", err)
	default:
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
}

func (s *Session) listAll() error {
	if s.repo.Len() == 0 {
		fmt.Fprintln(s.out, "No farm animals to display.")
		return nil
	}
	WriteTable(s.out, s.repo.Sorted(), s.f)
	return nil
}

func (s *Session) clear() error {
	fmt.Fprint(s.out, clearScreen)
	return nil
}

func (s *Session) printMetrics() error {
	animals := s.repo.All()
	if len(animals) == 0 {
		fmt.Fprintln(s.out, "No farm animals to calculate metrics for.")
		return nil
	}
	p := metrics.LoadPrices(s.prices)
	summary, err := metrics.Report(animals, p)
	if err != nil {
		s.reportError(err)
		return nil
	}
	WriteMetrics(s.out, summary, p, s.f)
	return nil
}

func (s *Session) queryMenu() error {
	choice, ok, err := s.choose(queryMenu, 4)
	if err != nil || !ok {
		return err
	}
	switch choice {
	case 1:
		return s.queryByID()
	case 2:
		return s.queryByColour()
	case 3:
		return s.queryByType()
	default:
		return s.queryByWeight()
	}
}

func (s *Session) queryByID() error {
	line, err := s.ask("Enter the ID of the animal you want to query:")
	if err != nil {
		return err
	}
	id, perr := strconv.Atoi(line)
	if perr != nil {
		fmt.Fprintln(s.out, "Invalid input. Please enter a valid ID.")
		return nil
	}
	a, found := query.ByID(s.repo.All(), id)
	if !found {
		fmt.Fprintf(s.out, "No animal found with ID %d.\n", id)
		return nil
	}
	WriteRecord(s.out, a, s.f)
	return nil
}

func (s *Session) queryByColour() error {
	colour, err := s.ask("Enter the colour of the animals you want to query:")
	if err != nil {
		return err
	}
	all := s.repo.All()
	matches := query.ByColour(all, colour)
	if len(matches) == 0 {
		fmt.Fprintf(s.out, "No animals found with colour '%s'.\n", colour)
		return nil
	}
	WriteColourReport(s.out, colour, matches, len(all), metrics.LoadPrices(s.prices), s.f)
	return nil
}

func (s *Session) queryByType() error {
	name, err := s.ask("Enter the animal type you want to query (Cow, Goat, or Sheep):")
	if err != nil {
		return err
	}
	matches := query.ByType(s.repo.All(), name)
	if len(matches) == 0 {
		fmt.Fprintf(s.out, "No animals found of type '%s'.\n", name)
		return nil
	}
	WriteTypeReport(s.out, matches[0].Species, matches, metrics.LoadPrices(s.prices), s.f)
	return nil
}

func (s *Session) queryByWeight() error {
	threshold, ok, err := s.askFloat("Enter the weight threshold (in KG):", "weight threshold")
	if err != nil || !ok {
		return err
	}
	matches, qerr := query.ByWeightAbove(s.repo.All(), threshold)
	if qerr != nil {
		fmt.Fprintln(s.out, "Invalid weight threshold. Please enter a positive value.")
		return nil
	}
	if len(matches) == 0 {
		fmt.Fprintln(s.out, "No animals found above the entered weight threshold.")
		return nil
	}
	WriteWeightReport(s.out, threshold, matches, metrics.LoadPrices(s.prices), s.f)
	return nil
}

func (s *Session) insertMenu() error {
	choice, ok, err := s.choose(insertMenu, len(types.AllSpecies))
	if err != nil || !ok {
		return err
	}
	return s.insert(types.AllSpecies[choice-1])
}

func (s *Session) insert(sp types.Species) error {
	fields := []struct {
		prompt string
		name   string
		dst    *float64
	}{
		{"Enter water (KG):", "water", new(float64)},
		{"Enter cost ($):", "cost", new(float64)},
		{"Enter weight (KG):", "weight", new(float64)},
		{yieldPrompt(sp), strings.ToLower(sp.YieldName()), new(float64)},
	}
	for _, fld := range fields {
		v, ok, err := s.askFloat(fld.prompt, fld.name)
		if err != nil || !ok {
			return err
		}
		*fld.dst = v
	}
	colour, err := s.ask("Enter colour:")
	if err != nil {
		return err
	}

	a := types.NewAnimal(sp, *fields[0].dst, *fields[1].dst, *fields[2].dst, colour, *fields[3].dst)
	saved, ierr := s.repo.Insert(a)
	if ierr != nil {
		s.reportError(ierr)
		return nil
	}
	fmt.Fprintf(s.out, "%s added successfully with ID %d!\n", sp, saved.ID)
	return nil
}

func yieldPrompt(sp types.Species) string {
	if sp == types.SpeciesSheep {
		return "Enter wool produced (KG):"
	}
	return "Enter milk (L):"
}

func (s *Session) deleteByID() error {
	line, err := s.ask("===Delete record from database===\nEnter livestock ID:")
	if err != nil {
		return err
	}
	id, perr := strconv.Atoi(line)
	if perr != nil {
		fmt.Fprintln(s.out, "Invalid input. Please enter a valid ID.")
		return nil
	}
	removed, derr := s.repo.Delete(id)
	switch {
	case types.IsNotFound(derr):
		fmt.Fprintf(s.out, "No animal found with ID %d.\n", id)
	case derr != nil:
		s.reportError(derr)
	default:
		fmt.Fprintln(s.out, "Deleting the following animal record:")
		WriteRecord(s.out, removed, s.f)
	}
	return nil
}

func (s *Session) editRecord() error {
	line, err := s.ask("===Update database record===\nEnter livestock ID:")
	if err != nil {
		return err
	}
	id, perr := strconv.Atoi(line)
	if perr != nil || id <= 0 {
		fmt.Fprintln(s.out, "Invalid input for livestock ID. Please enter a valid number greater than 0.")
		return nil
	}
	current, found := query.ByID(s.repo.All(), id)
	if !found {
		fmt.Fprintln(s.out, "Livestock with the specified ID not found.")
		return nil
	}

	fmt.Fprintln(s.out, "Original Livestock Record:")
	WriteRecord(s.out, current, s.f)
	fmt.Fprintln(s.out, "Leave a field blank to keep its current value.")

	var p types.Patch
	idLine, err := s.ask("Enter new ID:")
	if err != nil {
		return err
	}
	if idLine != "" {
		if newID, perr := strconv.Atoi(idLine); perr == nil {
			p.ID = &newID
		} else {
			fmt.Fprintln(s.out, "Invalid input for new ID. Please enter a valid, unique ID greater than 0.")
		}
	}
	if p.Water, err = s.askOptionalFloat("Enter Water:", "water"); err != nil {
		return err
	}
	if p.Cost, err = s.askOptionalFloat("Enter Cost:", "cost"); err != nil {
		return err
	}
	if p.Weight, err = s.askOptionalFloat("Enter Weight:", "weight"); err != nil {
		return err
	}
	colour, err := s.ask("Enter colour:")
	if err != nil {
		return err
	}
	p.Colour = &colour
	if p.Yield, err = s.askOptionalFloat(fmt.Sprintf("Enter %s:", current.Species.YieldName()), "yield"); err != nil {
		return err
	}

	res, uerr := s.repo.Update(id, p)
	if uerr != nil {
		s.reportError(uerr)
		return nil
	}
	for _, rej := range res.Rejected {
		if rej.Field == "ID" {
			fmt.Fprintln(s.out, "Invalid input for new ID. Please enter a valid, unique ID greater than 0.")
			continue
		}
		fmt.Fprintf(s.out, "Invalid input for %s: %v. Keeping %s.\n",
			strings.ToLower(rej.Field), rej.Err, strings.ToLower(rej.Field))
	}
	fmt.Fprintln(s.out, "Livestock record updated successfully.")
	fmt.Fprintln(s.out, "Record updated to:")
	WriteRecord(s.out, res.Updated, s.f)
	return nil
}

// askOptionalFloat returns nil for a blank or invalid answer, which keeps
// the current value. Invalid answers are reported against field.
func (s *Session) askOptionalFloat(prompt, field string) (*float64, error) {
	line, err := s.ask(prompt)
	if err != nil || line == "" {
		return nil, err
	}
	v, perr := parseNumber(line)
	if perr != nil {
		fmt.Fprintf(s.out, "Invalid input for %s. Keeping %s.\n", field, field)
		return nil, nil
	}
	return &v, nil
}
