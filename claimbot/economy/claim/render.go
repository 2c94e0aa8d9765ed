package claim

import "fmt"

// Render turns a decision and the resulting balance into the reply text.
func Render(d Decision, balance int64) string {
	switch d := d.(type) {
	case FirstClaim:
		return fmt.Sprintf("First claim successful! You got %d credits!\nYour balance is: %d credits", d.Grant, balance)
	case Granted:
		return fmt.Sprintf("You've claimed %d credits!\nYour new balance is: %d credits", d.Grant, balance)
	case AlreadyClaimed:
		return fmt.Sprintf("You've already claimed in this 24h period! Next claim available in %dh %dm", d.WaitHours, d.WaitMinutes)
	default:
		return ""
	}
}

func RenderBalance(balance int64) string {
	return fmt.Sprintf("Your current balance is: %d credits", balance)
}
