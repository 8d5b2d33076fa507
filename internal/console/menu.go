package console

// Command codes typed at the "Enter command index" prompt.
const (
	CmdAdd    = "1"
	CmdFind   = "2"
	CmdEdit   = "3"
	CmdRemove = "4"
	CmdPrint  = "5"
	CmdSave   = "6"
	CmdLoad   = "7"
)

type menuItem struct {
	code  string
	label string
}

// menu lists the commands in the order they are printed.
var menu = []menuItem{
	{CmdAdd, "Add Task"},
	{CmdFind, "Find task"},
	{CmdEdit, "Edit task"},
	{CmdRemove, "Remove task"},
	{CmdPrint, "Print task"},
	{CmdSave, "Store task to file"},
	{CmdLoad, "Read task from file"},
}

// Prompts.
const (
	promptCommand     = "Enter command index"
	promptName        = "Enter your task name"
	promptDescription = "Enter your task description"
	promptPriority    = "Enter new task priority"
	promptFindName    = "Enter task name to find"
	promptEditName    = "Enter task name to edit"
	promptRemoveName  = "Enter task name to remove"
	promptSavePath    = "Enter file name"
	promptLoadPath    = "Enter file name to read"
)
