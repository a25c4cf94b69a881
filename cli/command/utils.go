package command

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/mgutz/ansi"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/compute-tools/vm-restore-points/factory"
	"github.com/compute-tools/vm-restore-points/orchestrator"
)

func trapSigint() {
	sigintChan := make(chan os.Signal, 1)
	signal.Notify(sigintChan, os.Interrupt)

	go func() {
		for range sigintChan {
			stdinReader := bufio.NewReader(os.Stdin)
			factory.ApplicationLoggerStdout.Pause()
			factory.ApplicationLoggerStderr.Pause()
			fmt.Fprintln(os.Stdout, "\n"+restoreSigintQuestion)
			input, err := stdinReader.ReadString('\n')
			if err != nil {
				fmt.Println("\n" + restoreStdinErrorMessage)
			} else if strings.ToLower(strings.TrimSpace(input)) == "yes" {
				fmt.Println(restoreCleanupAdvisedNotice)
				os.Exit(1)
			}
			factory.ApplicationLoggerStdout.Resume() //nolint:errcheck
			factory.ApplicationLoggerStderr.Resume() //nolint:errcheck
		}
	}()
}

func processError(err orchestrator.Error) error {
	errorCode, errorMessage, errorWithStackTrace := orchestrator.ProcessError(err)
	if err := writeStackTrace(errorWithStackTrace); err != nil {
		return errors.Wrap(err, err.Error())
	}

	return cli.NewExitError(errorMessage, errorCode)
}

func writeStackTrace(errorWithStackTrace string) error {
	if errorWithStackTrace != "" {
		err := os.WriteFile(fmt.Sprintf("vmrestore-%s.err.log", time.Now().UTC().Format(time.RFC3339)), []byte(errorWithStackTrace), 0644)
		if err != nil {
			return err
		}
	}
	return nil
}

func redCliError(err error) *cli.ExitError {
	return cli.NewExitError(ansi.Color(err.Error(), "red"), 1)
}
