package wordcount

// UsageMessage is printed when the program is not given exactly one path.
const UsageMessage = "Error: Expected one commandline argument: 'FILEPATH'"

// UsageError reports a wrong number of positional arguments.
type UsageError struct {
	Got int
}

func (e *UsageError) Error() string { return UsageMessage }
