package options

// Defaults returns the registry of the bot's config options, in the order
// they are asked during first-time setup.
func Defaults() *Registry {
	return NewRegistry(
		NewTextOption(
			"bot-token",
			"Enter the token for the bot",
			".\nYou can get the bot's token from the bot application. "+
				"To learn how to create a bot application, visit https://discord.com/developers/applications",
		),
		NewDefaultOption("prefix", "Enter the prefix for the bot", ";"),
		NewChoiceOption(
			"server-type",
			"Enter the type of Minecraft server (Java or Bedrock)",
			"java",
			[]string{"java", "bedrock"},
			"Please enter either Java or Bedrock.",
		),
		NewTextOption("server-ip", "Enter the Minecraft server ip to display status for", ""),
		NewIntOption(
			"refresh-rate",
			"Enter the amount of seconds to wait in between status refreshes",
			60,
			30,
			"Seconds must be 30 or higher. This is due to Discord's ratelimit on changing statuses.",
		),
		NewFeatureOption(
			"maintenance-mode-detection",
			"Would you like to enable maintenance mode detection? "+
				"This will allow you to specify a substring to search for in the Minecraft server's MOTD. "+
				"If the substring is found, the bot's status is set to maintenance mode "+
				"(DND presence with a maintenance mode message).",
			"Enter the text to look for in the MOTD",
		),
	)
}
