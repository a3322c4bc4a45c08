package types

const Root = "ledctl"

// Bus topics. Bridges map them under their own prefix.
var (
	TopicLEDs     = []string{Root, "leds"}
	TopicSwitches = []string{Root, "switches"}
	TopicDisplay  = []string{Root, "display"}
	TopicUARTLine = []string{Root, "uart", "line"}

	TopicSwitchSet  = []string{Root, "switches", "set"}
	TopicUARTInject = []string{Root, "uart", "rx"}
)

var TopicHeartbeat = []string{Root, "heartbeat"}

// ConfigTopic is the retained topic of one configuration section.
func ConfigTopic(section string) []string {
	return []string{Root, "config", section}
}
