// Package console implements the numbered text menu over the hub.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/urmzd/smarthome/pkg/device"
	"github.com/urmzd/smarthome/pkg/hub"
)

// ErrInputFormat is returned when non-numeric text is entered where a
// number was required.
var ErrInputFormat = errors.New("input is not a number")

// Shell reads menu selections from in and writes everything it displays to out.
type Shell struct {
	hub *hub.Hub
	in  *bufio.Scanner
	out io.Writer
	loc *time.Location
}

// Option configures a Shell.
type Option func(*Shell)

// WithLocation sets the timezone used to display security log timestamps.
func WithLocation(loc *time.Location) Option {
	return func(s *Shell) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// New creates a shell over h.
func New(h *hub.Hub, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		hub: h,
		in:  bufio.NewScanner(in),
		out: out,
		loc: time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

const mainMenu = `Smart Home Automation System Menu:
1. Turn on all devices
2. Turn off all devices
3. Show status of all devices
4. Interact with a specific device
5. Show security logs
6. Exit`

const (
	choiceTurnOnAll = iota + 1
	choiceTurnOffAll
	choiceStatus
	choiceInteract
	choiceLogs
	choiceExit
)

// Run shows the main menu until the user exits, the input ends or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.println(mainMenu)
		choice, err := s.readChoice("Enter your choice: ", choiceExit)
		if errors.Is(err, io.EOF) {
			return s.inputErr()
		}
		if err != nil {
			continue
		}

		switch choice {
		case choiceTurnOnAll:
			s.printOutcomes(s.hub.TurnOnAll())
		case choiceTurnOffAll:
			s.printOutcomes(s.hub.TurnOffAll())
		case choiceStatus:
			s.showStatus()
		case choiceInteract:
			if err := s.interact(ctx); errors.Is(err, io.EOF) {
				return s.inputErr()
			}
		case choiceLogs:
			s.showLogs()
		case choiceExit:
			s.println("Exiting the system.")
			return nil
		}
	}
}

func (s *Shell) showStatus() {
	for _, e := range s.hub.StatusAll() {
		s.printf("%s: %s\n", e.Name, e.Status)
	}
}

func (s *Shell) showLogs() {
	sec, err := s.hub.Security()
	if err != nil {
		s.println("No security system registered.")
		return
	}
	s.println("Security System Logs:")
	for _, e := range sec.Logs() {
		s.println(e.In(s.loc).String())
	}
}

func (s *Shell) interact(ctx context.Context) error {
	name, err := s.readLine("Enter the device name (Light, Climate Control, Security System): ")
	if err != nil {
		return err
	}

	d, err := s.hub.Find(name)
	if err != nil {
		log.Debug().Str("name", name).Msg("device lookup miss")
		s.println("Device not found.")
		return nil
	}
	s.printf("Interacting with %s.\n", d.Name())
	return s.deviceMenu(ctx, d)
}

// readLine prompts and returns the next trimmed input line.
func (s *Shell) readLine(prompt string) (string, error) {
	s.printf("%s", prompt)
	if !s.in.Scan() {
		s.println("")
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// readChoice reads a menu selection in [1,limit]. Invalid input is reported
// before returning an error so callers can simply re-prompt.
func (s *Shell) readChoice(prompt string, limit int) (int, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := parseNumber(line)
	if err != nil {
		s.println("Invalid choice. Please enter a number.")
		return 0, err
	}
	if n < 1 || n > limit {
		s.println("Invalid choice. Please try again.")
		return 0, fmt.Errorf("choice %d out of range", n)
	}
	return n, nil
}

// readNumber reads an integer argument for a setter.
func (s *Shell) readNumber(prompt string) (int, error) {
	line, err := s.readLine(prompt)
	if err != nil {
		return 0, err
	}
	n, err := parseNumber(line)
	if err != nil {
		s.println("Invalid value. Please enter a number.")
		return 0, err
	}
	return n, nil
}

func parseNumber(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInputFormat, text)
	}
	return n, nil
}

func (s *Shell) printOutcomes(outcomes []hub.Outcome) {
	for _, o := range outcomes {
		s.println(o.Result.Message)
	}
}

// report prints the result of an operation on d followed by d's status.
// The console serves no scrape endpoint, so operations are logged, not counted.
func (s *Shell) report(d device.Device, op string, res device.Result, err error) {
	log.Debug().Err(err).Str("device", d.Name()).Str("op", op).Bool("ok", res.OK).Msg("console operation")
	s.println(res.Message)
	s.printf("%s: %s\n", d.Name(), d.Status())
}

func (s *Shell) inputErr() error {
	if err := s.in.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func (s *Shell) println(text string) {
	fmt.Fprintln(s.out, text)
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
