package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Nikita1234567123/my-git-project/internal/alerr"
)

// Prompter reads answers from in and writes prompts to out.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter, typically on os.Stdin and os.Stdout.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// PromptConfig configures a single prompt.
type PromptConfig struct {
	Message      string
	DefaultValue string
	Required     bool
	Validator    func(string) error
}

// Prompt displays a prompt and reads one line. The line is trimmed; an empty
// answer takes the default. Input that ends without a newline is still used.
// io.EOF is returned only when nothing at all could be read.
func (p *Prompter) Prompt(cfg PromptConfig) (string, error) {
	prompt := Primary("? ") + cfg.Message
	if cfg.DefaultValue != "" {
		prompt += Dim(fmt.Sprintf(" (%s)", cfg.DefaultValue))
	}
	prompt += Primary(": ")
	fmt.Fprint(p.out, prompt)

	input, err := p.readLine()
	if err != nil {
		return "", err
	}

	if input == "" && cfg.DefaultValue != "" {
		input = cfg.DefaultValue
	}
	if cfg.Required && input == "" {
		return "", errors.New("input is required")
	}
	if cfg.Validator != nil {
		if err := cfg.Validator(input); err != nil {
			return "", err
		}
	}
	return input, nil
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// MenuOption is one entry of a numbered menu. Either the key or the name
// selects it.
type MenuOption struct {
	Key   string // "1"
	Name  string // "text"
	Label string // "Enter text"
}

// Menu prints the options and reads one choice. An answer that matches no
// option yields an ErrInvalidChoice error, with a suggestion when the answer
// is close to an option name.
func (p *Prompter) Menu(title string, options []MenuOption) (MenuOption, error) {
	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, Bold(title))
	for _, opt := range options {
		fmt.Fprintf(p.out, "  %s %s\n", Primary(opt.Key+"."), opt.Label)
	}
	fmt.Fprint(p.out, Primary("Select: "))

	input, err := p.readLine()
	if err != nil {
		return MenuOption{}, err
	}
	return ResolveChoice(input, options)
}

// ResolveChoice maps an answer to a menu option by key or by name,
// ignoring case and surrounding space.
func ResolveChoice(input string, options []MenuOption) (MenuOption, error) {
	input = strings.ToLower(strings.TrimSpace(input))

	names := make([]string, 0, len(options))
	for _, opt := range options {
		if input == opt.Key || input == strings.ToLower(opt.Name) {
			return opt, nil
		}
		names = append(names, opt.Name)
	}

	err := alerr.Newf(alerr.ErrInvalidChoice, "invalid choice %q", input)
	if suggestion := alerr.SuggestSimilar(input, names); suggestion != "" {
		err.WithHelp(suggestion)
	} else {
		keys := make([]string, len(options))
		for i, opt := range options {
			keys[i] = opt.Key
		}
		err.WithHelp("enter one of " + strings.Join(keys, ", "))
	}
	return MenuOption{}, err
}
