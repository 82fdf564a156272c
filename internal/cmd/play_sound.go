package cmd

// PlaySoundCmd plays a notification sound
type PlaySoundCmd struct {
	Event string `help:"Sound event to play (complete, start, pause)" default:"complete"`
}

// Run executes the sound playing logic
func (p *PlaySoundCmd) Run(cli *CLI) error {
	return cli.Container.NotificationService.PlaySoundForEvent(p.Event)
}
