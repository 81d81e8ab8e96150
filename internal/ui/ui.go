// Package ui renders the interactive session's fixed surfaces (banner,
// prompt, result framing) and owns the user-facing message bank.
package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

const logo = `  _____   _        _     __  __
 |  __ \ (_)      | |   |  \/  |
 | |  | | _   ___ | |_  | \  / |  __ _  _ __    __ _   __ _   ___  _ __
 | |  | || | / _ \| __| | |\/| | / _' || '_ \  / _' | / _' | / _ \| '__|
 | |__| || ||  __/| |_  | |  | || (_| || | | || (_| || (_| ||  __/| |
 |_____/ |_| \___| \__| |_|  |_| \__,_||_| |_| \__,_| \__, | \___||_|
                                                       __/ |
                                                      |___/`

const splitLine = "----------------------------------------------------------------"

// Banner prints the startup logo and welcome message.
func Banner(w io.Writer) {
	color.New(color.FgCyan).Fprintln(w, logo)
	color.New(color.FgGreen, color.Bold).Fprintln(w, WelcomeMessage)
	fmt.Fprintln(w, splitLine)
}

// Prompt prints the input prompt.
func Prompt(w io.Writer) {
	color.New(color.FgYellow).Fprint(w, "> ")
}

// PrintResult frames one command result between split lines.
func PrintResult(w io.Writer, result string) {
	fmt.Fprintln(w, result)
	fmt.Fprintln(w, splitLine)
}
