package config

// Validate re-checks the structural invariants of an assembled
// configuration. [LoadConfig] never returns a configuration that fails
// Validate; the method exists for callers that build or copy a SvcConfig
// by hand.
func (c *SvcConfig) Validate() error {
	if !c.RouterID.Is4() {
		return newError("routerid must be an IPv4 address")
	}
	if c.PeerMode.requiresBGPPeer() && !c.BGPPeer.IsValid() {
		return newError("bgppeer was not specified")
	}
	if c.PeerMode.requiresBMPPeer() && !c.BMPPeer.IsValid() {
		return newError("bmppeer was not specified")
	}
	if c.PeerMode.requiresListener() && !c.ProtoListen.IsValid() {
		return newError("protolisten was not specified")
	}
	if !c.HTTPListen.IsValid() {
		return newError("httplisten is not set")
	}
	if c.HistoryDepth < 0 {
		return newError("historydepth must not be negative")
	}
	if c.WhoisConfig == nil {
		return newError("whois server map is not loaded")
	}
	if err := c.WhoisConfig.Validate(); err != nil {
		return err
	}
	if len(c.WhoisDNS) == 0 {
		return newError("whoisdns list is empty")
	}
	return nil
}
