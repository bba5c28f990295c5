package parser

// operatorInfo describes the fd/mode produced by a single-token redirection
// operator such as "1>>".
type operatorInfo struct {
	fd   Fd
	mode Mode
}

var singleTokenOperators = map[string]operatorInfo{
	">":   {FdStdout, ModeOverwrite},
	">>":  {FdStdout, ModeAppend},
	"1>":  {FdStdout, ModeOverwrite},
	"1>>": {FdStdout, ModeAppend},
	"2>":  {FdStderr, ModeOverwrite},
	"2>>": {FdStderr, ModeAppend},
}

// splitFdOperators maps a leading fd token ("1" or "2") to the fd it selects
// when immediately followed by a bare ">" or ">>" token.
var splitFdOperators = map[string]Fd{
	"1": FdStdout,
	"2": FdStderr,
}

// ExtractRedirection scans stage left to right for the first redirection
// operator. Everything before it is the command's tokens; everything at or
// after it is consumed by the returned clause. A clause is returned with a
// nil value when no operator is present. A clause whose Target is empty
// means the operator's file argument was missing.
func ExtractRedirection(stage []string) (command []string, clause *RedirectionClause) {
	for i, t := range stage {
		if info, ok := singleTokenOperators[t]; ok {
			target := ""
			if i+1 < len(stage) {
				target = stage[i+1]
			}
			return stage[:i], &RedirectionClause{Fd: info.fd, Mode: info.mode, Target: target}
		}

		if fd, ok := splitFdOperators[t]; ok && i+1 < len(stage) {
			var mode Mode
			switch stage[i+1] {
			case ">":
				mode = ModeOverwrite
			case ">>":
				mode = ModeAppend
			default:
				continue
			}
			target := ""
			if i+2 < len(stage) {
				target = stage[i+2]
			}
			return stage[:i], &RedirectionClause{Fd: fd, Mode: mode, Target: target}
		}
	}

	return stage, nil
}
