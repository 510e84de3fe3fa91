package metrics

// Metrics records what happens to regions and region events.
type Metrics interface {
	RegionEventReceived(eventType string)
	ActivationRecorded()
	ActivationIgnored(reason string)
	NotificationFailed()
	RegistrationFailed()
	SetRegisteredRegions(count int)
}
