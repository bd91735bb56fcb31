package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/checkbook-dev/checkbook/internal/config"
	"github.com/checkbook-dev/checkbook/internal/ledger"
	"github.com/checkbook-dev/checkbook/internal/store"
)

// env is everything an opened ledger command needs.
type env struct {
	dataDir string
	cfg     *config.Config
	store   *store.SQLiteStore
	ledger  *ledger.Service
}

// openEnv loads the config and opens the store for an initialized data
// directory. The caller must call close().
func openEnv(dataDir string) (*env, func(), error) {
	cfg, err := config.Load(config.Path(dataDir))
	if err != nil {
		return nil, nil, fmt.Errorf("loading config (run 'checkbook init' first?): %w", err)
	}

	st, err := store.Open(config.DBPath(dataDir))
	if err != nil {
		return nil, nil, err
	}

	e := &env{
		dataDir: dataDir,
		cfg:     cfg,
		store:   st,
		ledger:  ledger.NewService(st),
	}
	return e, func() { _ = st.Close() }, nil
}

// accountName falls back to the configured default account.
func (e *env) accountName(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if e.cfg.Ledger.DefaultAccount != "" {
		return e.cfg.Ledger.DefaultAccount, nil
	}
	return "", fmt.Errorf("no account given and no default_account configured")
}

// confirmFunc asks the user a yes/no question. Answering anything but
// y/yes cancels.
type confirmFunc func(prompt string) bool

// stdinConfirm builds a confirmFunc over the command's input/output
// streams. When skip is set (--yes), every prompt auto-confirms.
func stdinConfirm(in io.Reader, out io.Writer, skip bool) confirmFunc {
	reader := bufio.NewReader(in)
	return func(prompt string) bool {
		if skip {
			return true
		}
		fmt.Fprintf(out, "%s [y/N]: ", prompt)
		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}
}
