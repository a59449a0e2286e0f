package engine

// Player-facing messages. Formats take the object noun, item, or interactable
// name as their only argument.
const (
	MsgEmptyInput            = "Please enter a command."
	MsgIllegalCommandFmt     = "%s is not a legal command\n"
	MsgUnresolved            = "I was unable to understand your command.  Please re-enter and try again."
	MsgNoAppropriateCommand  = "You didn't choose an appropriate command"
	MsgCannotInteractFmt     = "You currently can not interact with %s"
	MsgAlreadyInteractedFmt  = "You have already interacted with the %s"
	MsgPickedUpFmt           = "You have picked up a %s"
	MsgAlreadyHaveFmt        = "You already have the %s"
	MsgInventoryHeader       = "Your inventory:\n"
	MsgInventoryLineFmt      = "%s: %s\n"
	MsgInventoryEmpty        = "You have no items in your inventory"
	MsgNoExitFmt             = "There is no exit leaving %s"
	MsgExitLocked            = "The way is locked. You must unlock the path before you proceed."
	MsgNoPathFmt             = "There is no path to the %s"
	MsgAlreadyUsedFmt        = "%s has already been used here"
	MsgNoSuchItemInInventory = "You have no item of that name in your inventory"
	MsgCannotUseHereFmt      = "You can not use `%s` here"
)
