package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/is3ka1/camdict"
	"github.com/is3ka1/camdict/lookup"
)

// Prompt is printed before each word read in interactive mode.
const Prompt = "Search word: "

// Run executes the query command.
func (c *QueryCmd) Run(deps *Dependencies) error {
	if len(c.Words) == 0 {
		return c.runInteractive(deps)
	}
	return c.runBatch(deps)
}

// runInteractive reads one word per line until EOF or an empty line.
func (c *QueryCmd) runInteractive(deps *Dependencies) error {
	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(deps.Stdout)
			return scanner.Err()
		}
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			return nil
		}

		result, err := deps.Dictionary.Query(deps.Ctx, word)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", word, errorText(err))
			continue
		}
		if err := c.print(deps, result); err != nil {
			return err
		}
	}
}

func (c *QueryCmd) runBatch(deps *Dependencies) error {
	outcomes := lookup.QueryAll(deps.Ctx, deps.Dictionary, c.Words, c.Concurrency)

	failed, printed := 0, 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", o.Word, errorText(o.Err))
			continue
		}
		if printed > 0 && !c.JSON {
			fmt.Fprintln(deps.Stdout)
		}
		if err := c.print(deps, o.Result); err != nil {
			return err
		}
		printed++
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d lookups failed", failed, len(outcomes))
	}
	return nil
}

func (c *QueryCmd) print(deps *Dependencies, result *camdict.QueryResult) error {
	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	for _, line := range camdict.FormatResult(result) {
		fmt.Fprintln(deps.Stdout, line)
	}
	return nil
}

// errorText prefers the application message and falls back to the full
// error for transport failures.
func errorText(err error) string {
	if camdict.ErrorCode(err) == camdict.EINTERNAL {
		return err.Error()
	}
	return camdict.ErrorMessage(err)
}
