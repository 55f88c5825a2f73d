package completions

import (
	"fmt"
	"strings"
)

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func words(cmd CommandInfo, global []FlagInfo) []string {
	var out []string
	for _, sub := range cmd.Subcommands {
		out = append(out, sub.Name)
	}
	for _, set := range [][]FlagInfo{cmd.Flags, global} {
		for _, f := range set {
			for _, n := range f.Names {
				if f.HasValue && strings.HasPrefix(n, "--") {
					n += "="
				}
				out = append(out, n)
			}
		}
	}
	return out
}

func rootFlags(commands []CommandInfo) []FlagInfo {
	if len(commands) == 0 {
		return nil
	}
	return commands[0].Flags
}

func GenerateBash(bin string, commands []CommandInfo) string {
	var b strings.Builder
	fn := "_" + bin + "_completions"
	global := rootFlags(commands)

	fmt.Fprintf(&b, "# %s bash completion script\n\n", bin)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString("    local cur path i\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	fmt.Fprintf(&b, "    path=%q\n", bin)
	b.WriteString("    for ((i=1; i<COMP_CWORD; i++)); do\n")
	b.WriteString("        case \"${COMP_WORDS[i]}\" in\n")
	b.WriteString("            -*) ;;\n")
	b.WriteString("            *) path=\"$path ${COMP_WORDS[i]}\" ;;\n")
	b.WriteString("        esac\n")
	b.WriteString("    done\n\n")
	b.WriteString("    case \"$path\" in\n")
	for i, cmd := range commands {
		flags := global
		if i == 0 {
			flags = nil
		}
		fmt.Fprintf(&b, "        %q) COMPREPLY=( $(compgen -W %q -- \"$cur\") ) ;;\n",
			strings.Join(cmd.Path, " "), strings.Join(words(cmd, flags), " "))
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "complete -F %s %s\n", fn, bin)
	return b.String()
}

func GenerateZsh(bin string, commands []CommandInfo) string {
	var b strings.Builder
	global := rootFlags(commands)

	fmt.Fprintf(&b, "#compdef %s\n\n", bin)

	fmt.Fprintf(&b, "_%s_commands() {\n", bin)
	b.WriteString("    local -a entries\n")
	b.WriteString("    case \"$1\" in\n")
	for i, cmd := range commands {
		flags := global
		if i == 0 {
			flags = nil
		}
		fmt.Fprintf(&b, "        %q)\n", strings.Join(cmd.Path, " "))
		b.WriteString("            entries=(\n")
		for _, sub := range cmd.Subcommands {
			fmt.Fprintf(&b, "                %s\n", quote(sub.Name+":"+sub.Summary))
		}
		for _, set := range [][]FlagInfo{cmd.Flags, flags} {
			for _, f := range set {
				for _, n := range f.Names {
					fmt.Fprintf(&b, "                %s\n", quote(strings.ReplaceAll(n, ":", `\:`)+":"+f.Description))
				}
			}
		}
		b.WriteString("            )\n")
		b.WriteString("            ;;\n")
	}
	b.WriteString("    esac\n")
	b.WriteString("    _describe 'command' entries\n")
	b.WriteString("}\n\n")

	fmt.Fprintf(&b, "_%s() {\n", bin)
	b.WriteString("    local path word\n")
	fmt.Fprintf(&b, "    path=%q\n", bin)
	b.WriteString("    for word in ${words[2,CURRENT-1]}; do\n")
	b.WriteString("        [[ $word == -* ]] || path=\"$path $word\"\n")
	b.WriteString("    done\n")
	fmt.Fprintf(&b, "    _%s_commands \"$path\"\n", bin)
	b.WriteString("}\n\n")
	fmt.Fprintf(&b, "compdef _%s %s\n", bin, bin)
	return b.String()
}

func GenerateFish(bin string, commands []CommandInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s fish completion script\n\n", bin)
	fmt.Fprintf(&b, "complete -c %s -f\n", bin)

	for _, cmd := range commands {
		parents := cmd.Path[1:]

		var subNames []string
		for _, sub := range cmd.Subcommands {
			subNames = append(subNames, sub.Name)
		}

		for _, sub := range cmd.Subcommands {
			var cond string
			if len(parents) == 0 {
				cond = "__fish_use_subcommand"
			} else {
				cond = seenAll(parents) + "; and not __fish_seen_subcommand_from " + strings.Join(subNames, " ")
			}
			fmt.Fprintf(&b, "complete -c %s -n %s -a %s -d %s\n", bin, quote(cond), quote(sub.Name), quote(sub.Summary))
		}

		for _, f := range cmd.Flags {
			line := fmt.Sprintf("complete -c %s", bin)
			if len(parents) > 0 {
				line += " -n " + quote(seenAll(parents))
			}
			if long := f.Long(); long != "" {
				line += " -l " + long
			}
			if short := f.Short(); short != "" {
				line += " -s " + short
			}
			if f.HasValue {
				line += " -r"
			}
			b.WriteString(line + " -d " + quote(f.Description) + "\n")
		}
	}
	return b.String()
}

func seenAll(path []string) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = "__fish_seen_subcommand_from " + p
	}
	return strings.Join(parts, "; and ")
}
