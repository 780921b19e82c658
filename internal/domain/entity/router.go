package entity

// PPPProfile is a RouterOS PPP profile.
type PPPProfile struct {
	Name          string
	RateLimit     string
	LocalAddress  string
	RemoteAddress string
}

// PPPSecret is a RouterOS PPPoE account.
type PPPSecret struct {
	Name          string
	Profile       string
	Service       string
	Disabled      bool
	Comment       string
	LastLoggedOut string
}

// HotspotSession is a logged-in hotspot user.
type HotspotSession struct {
	User    string
	Address string
	Uptime  string
	MAC     string
	LoginBy string
	Comment string
}

// RouterInterface is one RouterOS interface as listed by /interface/print.
type RouterInterface struct {
	ID      string
	Name    string
	Type    string
	Comment string
	Running bool
}

// RouterResource aggregates system health for the resource command.
type RouterResource struct {
	Identity       string
	BoardName      string
	Version        string
	Uptime         string
	CPULoad        string
	FreeMemory     int64
	TotalMemory    int64
	FreeHDD        int64
	TotalHDD       int64
	Temperature    string
	CPUTemperature string
	Voltage        string
	RunningIfaces  []RouterInterface
}

// MemoryUsedPercent returns used memory as a percentage, or -1 when unknown.
func (r RouterResource) MemoryUsedPercent() float64 {
	return usedPercent(r.FreeMemory, r.TotalMemory)
}

// HDDUsedPercent returns used storage as a percentage, or -1 when unknown.
func (r RouterResource) HDDUsedPercent() float64 {
	return usedPercent(r.FreeHDD, r.TotalHDD)
}

func usedPercent(free, total int64) float64 {
	if total <= 0 {
		return -1
	}

	return float64(total-free) / float64(total) * 100
}

// InterfaceTraffic is a single monitor-traffic sample.
type InterfaceTraffic struct {
	Interface RouterInterface
	RxBPS     float64
	TxBPS     float64
}
