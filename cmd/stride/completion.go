// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/stride/internal/errors"
)

// bashCompletionTemplate is the bash completion script for stride.
const bashCompletionTemplate = `#!/bin/bash

# Bash completion script for stride
# Installation:
#   source <(stride completion bash)

_stride_completion() {
    local cur prev commands
    commands="list sum describe init completion"

    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    case "${prev}" in
        --kind|-k)
            COMPREPLY=( $(compgen -W "int float" -- ${cur}) )
            return 0
            ;;
        --format)
            COMPREPLY=( $(compgen -W "text json yaml table" -- ${cur}) )
            return 0
            ;;
        --config|--metrics-textfile)
            COMPREPLY=( $(compgen -f -- ${cur}) )
            return 0
            ;;
    esac

    if [ $COMP_CWORD -eq 1 ]; then
        if [[ ${cur} == -* ]] ; then
            COMPREPLY=( $(compgen -W "--version --config --json --format --quiet --no-color --verbose --metrics-textfile" -- ${cur}) )
        else
            COMPREPLY=( $(compgen -W "${commands}" -- ${cur}) )
        fi
        return 0
    fi

    local cmd="${COMP_WORDS[1]}"
    case "${cmd}" in
        list)
            if [[ ${cur} == --* ]] ; then
                COMPREPLY=( $(compgen -W "--kind --limit --sep" -- ${cur}) )
            fi
            ;;
        sum|describe)
            if [[ ${cur} == --* ]] ; then
                COMPREPLY=( $(compgen -W "--kind --limit" -- ${cur}) )
            fi
            ;;
        init)
            if [[ ${cur} == --* ]] ; then
                COMPREPLY=( $(compgen -W "--force" -- ${cur}) )
            fi
            ;;
        completion)
            if [ $COMP_CWORD -eq 2 ]; then
                COMPREPLY=( $(compgen -W "bash zsh fish" -- ${cur}) )
            fi
            ;;
    esac
}

complete -F _stride_completion stride
`

// zshCompletionTemplate is the zsh completion script for stride.
const zshCompletionTemplate = `#compdef stride

# Zsh completion script for stride
# Installation:
#   stride completion zsh > "${fpath[1]}/_stride"

_stride() {
    local -a commands
    commands=(
        'list:Print every value of a range'
        'sum:Print the sum of a range'
        'describe:Summarise a range'
        'init:Create .stride.yaml'
        'completion:Generate shell completion script'
    )

    local -a range_opts
    range_opts=(
        '(-k --kind)'{-k,--kind}'[Element kind]:kind:(int float)'
        '--limit[Stop with an error after this many values]:limit:'
        '1:start:'
        '2:stop:'
        '3:step:'
    )

    _arguments -C \
        '(- *)--version[Show version and exit]' \
        '--config[Path to .stride.yaml]:config file:_files -g "*.yaml"' \
        '--json[Output as JSON]' \
        '--format[Output format]:format:(text json yaml table)' \
        '(-q --quiet)'{-q,--quiet}'[Suppress progress and status messages]' \
        '--no-color[Disable colored output]' \
        '*'{-v,--verbose}'[Increase log verbosity]' \
        '--metrics-textfile[Write Prometheus metrics to file]:metrics file:_files' \
        '1: :->command' \
        '*:: :->args'

    case $state in
        command)
            _describe 'command' commands
            ;;
        args)
            case $words[1] in
                list)
                    _arguments $range_opts '--sep[Separator between values]:separator:'
                    ;;
                sum|describe)
                    _arguments $range_opts
                    ;;
                init)
                    _arguments '--force[Overwrite an existing .stride.yaml]'
                    ;;
                completion)
                    _arguments '1:shell:(bash zsh fish)'
                    ;;
            esac
            ;;
    esac
}

_stride
`

// fishCompletionTemplate is the fish completion script for stride.
const fishCompletionTemplate = `# Fish completion script for stride
# Installation:
#   stride completion fish > ~/.config/fish/completions/stride.fish

complete -c stride -f -n "__fish_use_subcommand" -a "list" -d "Print every value of a range"
complete -c stride -f -n "__fish_use_subcommand" -a "sum" -d "Print the sum of a range"
complete -c stride -f -n "__fish_use_subcommand" -a "describe" -d "Summarise a range"
complete -c stride -f -n "__fish_use_subcommand" -a "init" -d "Create .stride.yaml"
complete -c stride -f -n "__fish_use_subcommand" -a "completion" -d "Generate shell completion script"

complete -c stride -n "__fish_use_subcommand" -l version -d "Show version and exit"
complete -c stride -n "__fish_use_subcommand" -l config -d "Path to .stride.yaml" -r
complete -c stride -n "__fish_use_subcommand" -l json -d "Output as JSON"
complete -c stride -n "__fish_use_subcommand" -l format -d "Output format" -x -a "text json yaml table"
complete -c stride -n "__fish_use_subcommand" -s q -l quiet -d "Suppress progress and status messages"
complete -c stride -n "__fish_use_subcommand" -l no-color -d "Disable colored output"
complete -c stride -n "__fish_use_subcommand" -s v -l verbose -d "Increase log verbosity"
complete -c stride -n "__fish_use_subcommand" -l metrics-textfile -d "Write Prometheus metrics to file" -r

complete -c stride -n "__fish_seen_subcommand_from list sum describe" -s k -l kind -d "Element kind" -x -a "int float"
complete -c stride -n "__fish_seen_subcommand_from list sum describe" -l limit -d "Stop with an error after this many values" -x
complete -c stride -n "__fish_seen_subcommand_from list" -l sep -d "Separator between values" -x

complete -c stride -n "__fish_seen_subcommand_from init" -l force -d "Overwrite an existing .stride.yaml"

complete -c stride -n "__fish_seen_subcommand_from completion" -f -a "bash zsh fish"
`

var completionScripts = map[string]string{
	"bash": bashCompletionTemplate,
	"zsh":  zshCompletionTemplate,
	"fish": fishCompletionTemplate,
}

// runCompletion executes the 'completion' command, writing the completion
// script for the named shell to stdout.
//
// Examples:
//
//	source <(stride completion bash)
//	stride completion zsh > "${fpath[1]}/_stride"
//	stride completion fish | source
func runCompletion(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("completion", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, `Usage: stride completion <shell>

Generate a tab-completion script for bash, zsh or fish.

Examples:
  source <(stride completion bash)
  stride completion zsh > "${fpath[1]}/_stride"
  stride completion fish > ~/.config/fish/completions/stride.fish

After installing, restart your shell or source your rc file.
`)
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return err
		}
		return errors.NewInputError("Invalid option", err.Error(), "Run 'stride completion --help'")
	}

	if fs.NArg() != 1 {
		return errors.NewInputError(
			"Invalid arguments",
			"The completion command requires exactly one argument: the shell name",
			"Run 'stride completion bash', 'stride completion zsh', or 'stride completion fish'",
		)
	}

	script, ok := completionScripts[fs.Arg(0)]
	if !ok {
		return errors.NewInputError(
			"Unsupported shell",
			fmt.Sprintf("Shell '%s' is not supported. Valid options: bash, zsh, fish", fs.Arg(0)),
			"Run 'stride completion bash', 'stride completion zsh', or 'stride completion fish'",
		)
	}

	if _, err := io.WriteString(stdout, script); err != nil {
		return writeError(err)
	}
	return nil
}
