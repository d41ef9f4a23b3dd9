package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/salvo/board"
	"github.com/domino14/salvo/config"
	"github.com/domino14/salvo/heatmap"
	"github.com/domino14/salvo/rangefinder"
	"github.com/domino14/salvo/strategy"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errQuit              = errors.New("quit")
)

// ShellController keeps the hits, misses and ships the user has entered and
// runs the rangefinder on them. It does not referee a game.
type ShellController struct {
	l      *readline.Instance
	out    io.Writer
	config *config.Config

	execPath   string
	gitVersion string

	rf    *rangefinder.RangeFinder
	input rangefinder.Input
	// lastMap is the map for the current input, computed lazily.
	lastMap *heatmap.Map

	candidates []board.SunkShip
}

type shellcmd struct {
	cmd     string
	args    []string
	options map[string]string
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// newController builds a controller that writes to out, without a line
// editor.
func newController(cfg *config.Config, out io.Writer) *ShellController {
	sc := &ShellController{
		out:    out,
		config: cfg,
		rf:     rangefinder.NewFromConfig(cfg),
	}
	mode, err := strategy.ModeFromString(cfg.GetString(config.ConfigMode))
	if err != nil {
		log.Warn().Err(err).Msg("falling back to normal mode")
		mode = strategy.Normal
	}
	sc.reset(cfg.GetInt(config.ConfigBoardHeight), cfg.GetInt(config.ConfigBoardWidth))
	sc.input.Mode = mode
	return sc
}

func NewShellController(cfg *config.Config, execPath, gitVersion string) *ShellController {
	prompt := "\033[31msalvo>\033[0m "
	sc := newController(cfg, os.Stdout)
	sc.execPath = execPath
	sc.gitVersion = gitVersion

	l, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     "/tmp/salvo_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",
		AutoComplete:    &ShellCompleter{sc: sc},

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	sc.out = l.Stdout()
	return sc
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// reset clears the record and restores the configured fleet.
func (sc *ShellController) reset(height, width int) {
	mode := sc.input.Mode
	sc.input = rangefinder.Input{
		Height:    height,
		Width:     width,
		Remaining: sc.config.Fleet(),
		Mode:      mode,
	}
	sc.changed()
}

// changed drops anything derived from the previous input.
func (sc *ShellController) changed() {
	sc.lastMap = nil
	sc.candidates = nil
}

func (sc *ShellController) currentMap() *heatmap.Map {
	if sc.lastMap == nil {
		sc.lastMap = sc.rf.Compute(sc.input)
	}
	return sc.lastMap
}

// extractFields splits a line into the command, its positional arguments
// and its -option value pairs.
func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := map[string]string{}

	for idx := 1; idx < len(fields); idx++ {
		if strings.HasPrefix(fields[idx], "-") && len(fields[idx]) > 1 &&
			!isNumeric(fields[idx][1:2]) {
			if idx == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			options[fields[idx][1:]] = fields[idx+1]
			idx++
			continue
		}
		args = append(args, fields[idx])
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func isNumeric(s string) bool {
	return s >= "0" && s <= "9"
}

func (sc *ShellController) standardModeSwitch(line string, sig chan os.Signal) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	if cmd.cmd == "exit" || cmd.cmd == "bye" {
		if sig != nil {
			sig <- syscall.SIGINT
		}
		return nil, errQuit
	}
	handler, ok := sc.commands()[cmd.cmd]
	if !ok {
		return nil, fmt.Errorf("unknown command %q; try help", cmd.cmd)
	}
	return handler(cmd)
}

// Execute runs a single command line, as given on the command line of the
// binary.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	resp, err := sc.standardModeSwitch(line, sig)
	if errors.Is(err, errQuit) {
		return
	}
	if err != nil {
		sc.showError(err)
		return
	}
	if resp != nil {
		sc.showMessage(resp.message)
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		resp, err := sc.standardModeSwitch(line, sig)
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			sc.showError(err)
			continue
		}
		if resp != nil {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

func (sc *ShellController) Cleanup() {
	log.Info().Msg("shell cleanup")
}
