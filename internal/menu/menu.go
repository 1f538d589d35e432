// Package menu contains the interactive text menu driving the
// registry.
//
// DEPENDENCY PATTERN USED HERE — CONSTRUCTOR INJECTION:
// ─────────────────────────────────────────────────────
// The menu never reaches for globals. It is constructed with the
// registry it drives, the reader it prompts from, and the writer it
// prints to. In production those are the registry from main, os.Stdin
// and os.Stdout; in tests they are a scripted strings.Reader and a
// bytes.Buffer. Same code path either way.
//
// INPUT CONTRACT:
// Malformed numeric input (menu choice, identifier, age) is rejected
// and re-prompted HERE — the registry assumes every value it receives
// is already well-typed. EOF on input ends the loop cleanly, same as
// the exit choice.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/aanand-mishra/student-registry/internal/registry"
	"github.com/aanand-mishra/student-registry/internal/types"
	"github.com/aanand-mishra/student-registry/internal/utils/render"
	"github.com/go-playground/validator/v10"
	"github.com/samber/mo"
)

// Menu is the interactive loop over one registry.
type Menu struct {
	reg      *registry.Registry
	scanner  *bufio.Scanner
	out      io.Writer
	log      *slog.Logger
	validate *validator.Validate
}

// New returns a Menu reading prompts from in and printing to out.
func New(reg *registry.Registry, in io.Reader, out io.Writer, log *slog.Logger) *Menu {
	return &Menu{
		reg:      reg,
		scanner:  bufio.NewScanner(in),
		out:      out,
		log:      log,
		validate: validator.New(),
	}
}

// Run prints the menu, dispatches choices, and repeats until the user
// picks exit or input reaches EOF. The returned error is always nil
// today; the signature leaves room for a failing writer.
func (m *Menu) Run() error {
	for {
		fmt.Fprintln(m.out)
		fmt.Fprintln(m.out, "===== Student Registry =====")
		fmt.Fprintln(m.out, "1. Add student")
		fmt.Fprintln(m.out, "2. Update student")
		fmt.Fprintln(m.out, "3. Delete student")
		fmt.Fprintln(m.out, "4. List students")
		fmt.Fprintln(m.out, "5. Exit")

		choice, ok := m.promptLine("Enter choice: ")
		if !ok {
			return nil
		}

		switch strings.TrimSpace(choice) {
		case "1":
			ok = m.addStudent()
		case "2":
			ok = m.updateStudent()
		case "3":
			ok = m.deleteStudent()
		case "4":
			ok = m.listStudents()
		case "5":
			fmt.Fprintln(m.out, "goodbye")
			return nil
		default:
			fmt.Fprintln(m.out, "invalid choice: enter a number between 1 and 5")
			continue
		}

		if !ok { // a prompt hit EOF mid-operation
			return nil
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// addStudent collects all four fields, presence-validates them, and
// dispatches to the registry.
//
// Validation happens BEFORE dispatch: the registry never sees a
// student with a missing name, age, or major. Failures are printed
// with the shared field-error formatter and the user is returned to
// the menu.
// ─────────────────────────────────────────────────────────────────────────────
func (m *Menu) addStudent() bool {
	m.log.Info("creating a student")

	id, ok := m.promptInt64("Enter ID: ", "invalid id: must be an integer")
	if !ok {
		return false
	}
	name, ok := m.promptLine("Enter name: ")
	if !ok {
		return false
	}
	age, ok := m.promptInt("Enter age: ", "invalid age: must be an integer")
	if !ok {
		return false
	}
	major, ok := m.promptLine("Enter major: ")
	if !ok {
		return false
	}

	student := types.Student{
		ID:    id,
		Name:  strings.TrimSpace(name),
		Age:   age,
		Major: strings.TrimSpace(major),
	}

	// validate.Struct checks all validate:"..." tags on the struct.
	// It returns a ValidationErrors (which implements error) listing
	// every failing field.
	if err := m.validate.Struct(student); err != nil {
		var validateErrs validator.ValidationErrors
		if errors.As(err, &validateErrs) {
			fmt.Fprintln(m.out, "error:", render.ValidationError(validateErrs))
			return true
		}
		fmt.Fprintln(m.out, "error:", err)
		return true
	}

	outcome, err := m.reg.Add(student)
	if err != nil {
		m.fail("error adding student", id, err)
		return true
	}

	fmt.Fprintln(m.out, outcome)
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// updateStudent collects the identifier plus an optional new value per
// field. A blank line means "leave this field unchanged" and maps to
// mo.None; anything else is a supplied value, including a bare 0 for
// age, which the registry applies like any other value.
// ─────────────────────────────────────────────────────────────────────────────
func (m *Menu) updateStudent() bool {
	id, ok := m.promptInt64("Enter ID: ", "invalid id: must be an integer")
	if !ok {
		return false
	}
	m.log.Info("updating a student", slog.Int64("id", id))

	name, ok := m.promptOptionalLine("New name (blank to keep): ")
	if !ok {
		return false
	}
	age, ok := m.promptOptionalInt("New age (blank to keep): ", "invalid age: must be an integer")
	if !ok {
		return false
	}
	major, ok := m.promptOptionalLine("New major (blank to keep): ")
	if !ok {
		return false
	}

	patch := types.StudentPatch{Name: name, Age: age, Major: major}

	outcome, err := m.reg.Update(id, patch)
	if err != nil {
		m.fail("error updating student", id, err)
		return true
	}

	fmt.Fprintln(m.out, outcome)
	return true
}

func (m *Menu) deleteStudent() bool {
	id, ok := m.promptInt64("Enter ID: ", "invalid id: must be an integer")
	if !ok {
		return false
	}
	m.log.Info("deleting a student", slog.Int64("id", id))

	outcome, err := m.reg.Delete(id)
	if err != nil {
		m.fail("error deleting student", id, err)
		return true
	}

	fmt.Fprintln(m.out, outcome)
	return true
}

func (m *Menu) listStudents() bool {
	m.log.Info("listing students")

	listing, err := m.reg.List()
	if err != nil {
		m.log.Error("error listing students", slog.String("error", err.Error()))
		fmt.Fprintln(m.out, "error:", err)
		return true
	}

	entries, ok := listing.Get()
	if !ok {
		fmt.Fprintln(m.out, "no students found")
		return true
	}
	for _, entry := range entries {
		fmt.Fprintln(m.out, entry)
	}
	return true
}

// fail logs a backend fault and surfaces it to the user.
func (m *Menu) fail(msg string, id int64, err error) {
	m.log.Error(msg,
		slog.Int64("id", id),
		slog.String("error", err.Error()))
	fmt.Fprintln(m.out, "error:", err)
}

// ─────────────────────────────────────────────────────────────────────────────
// Prompt helpers. Each returns ok=false only on EOF; malformed numeric
// input is reported and re-prompted in a loop, so by the time a value
// is returned it is well-typed.
// ─────────────────────────────────────────────────────────────────────────────

func (m *Menu) promptLine(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.scanner.Scan() {
		return "", false
	}
	return m.scanner.Text(), true
}

func (m *Menu) promptInt64(prompt, badInput string) (int64, bool) {
	for {
		line, ok := m.promptLine(prompt)
		if !ok {
			return 0, false
		}
		// strconv.ParseInt(s, base, bitSize): base 10 = decimal,
		// bitSize 64 = int64.
		n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil {
			fmt.Fprintln(m.out, badInput)
			continue
		}
		return n, true
	}
}

func (m *Menu) promptInt(prompt, badInput string) (int, bool) {
	n, ok := m.promptInt64(prompt, badInput)
	return int(n), ok
}

func (m *Menu) promptOptionalLine(prompt string) (mo.Option[string], bool) {
	line, ok := m.promptLine(prompt)
	if !ok {
		return mo.None[string](), false
	}
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return mo.None[string](), true
	}
	return mo.Some(trimmed), true
}

func (m *Menu) promptOptionalInt(prompt, badInput string) (mo.Option[int], bool) {
	for {
		line, ok := m.promptLine(prompt)
		if !ok {
			return mo.None[int](), false
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			return mo.None[int](), true
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			fmt.Fprintln(m.out, badInput)
			continue
		}
		return mo.Some(n), true
	}
}
