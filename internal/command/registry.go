package command

// Register adds a command to the global registry, wrapped in the given
// middlewares (first listed runs outermost). Called from each command
// package's init.
func Register(cmd Command, mws ...Middleware) {
	for i := len(mws) - 1; i >= 0; i-- {
		cmd = mws[i](cmd)
	}
	registry[cmd.Name()] = cmd
}

var registry = map[string]Command{}

// Get returns the command with the given name.
func Get(name string) (Command, bool) {
	cmd, ok := registry[name]
	return cmd, ok
}

// All returns every registered command.
func All() []Command {
	list := make([]Command, 0, len(registry))
	for _, cmd := range registry {
		list = append(list, cmd)
	}
	return list
}
