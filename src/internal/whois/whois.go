package whois

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/lanrat/bgpexplorer/src/internal/utils"
)

const (
	// DefaultQuery is the query template used when a server entry does not
	// define one. $addr is replaced with the lookup subject.
	DefaultQuery = "$addr\r\n"

	// DefaultPort is the whois TCP port assumed when a host carries none.
	DefaultPort = 43
)

// Server describes a single whois server entry from the server map.
type Server struct {
	// Host is the server address, optionally with an explicit port.
	Host string `json:"host" mapstructure:"host" validate:"required,whois_host"`
	// Query is the request template; it must contain the $addr placeholder.
	Query string `json:"query,omitempty" mapstructure:"query" validate:"contains=$addr"`
	// Punycode converts internationalized names before querying.
	Punycode bool `json:"punycode,omitempty" mapstructure:"punycode"`
}

// Target returns the host:port dial target, appending the default whois
// port when the entry does not carry one.
func (s *Server) Target() string {
	if _, _, err := net.SplitHostPort(s.Host); err == nil {
		return s.Host
	}
	return net.JoinHostPort(s.Host, strconv.Itoa(DefaultPort))
}

// WhoIs is the whois server map: zone (TLD) -> server, plus the special
// targets stored under the "_" key (notably "ip", used for address and AS
// number lookups).
type WhoIs struct {
	servers map[string]*Server
	special map[string]*Server
}

// FromPath loads and validates a server map from a JSON file.
func FromPath(path string) (*WhoIs, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer utils.CloseOrWarn(file)

	var raw map[string]any
	if err := json.NewDecoder(file).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return fromRaw(raw)
}

// FromBytes builds and validates a server map from JSON text.
func FromBytes(data []byte) (*WhoIs, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return fromRaw(raw)
}

func fromRaw(raw map[string]any) (*WhoIs, error) {
	w := &WhoIs{
		servers: make(map[string]*Server),
		special: make(map[string]*Server),
	}

	for name, entry := range raw {
		if name == "_" {
			spec, ok := entry.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("entry %q: expected an object of special targets", name)
			}
			for sname, sentry := range spec {
				srv, err := decodeServer(sentry)
				if err != nil {
					return nil, fmt.Errorf("entry %q.%q: %v", name, sname, err)
				}
				w.special[sname] = srv
			}
			continue
		}

		srv, err := decodeServer(entry)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %v", name, err)
		}
		w.servers[strings.ToLower(name)] = srv
	}

	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// decodeServer accepts the two entry shapes the format allows: a bare host
// string, or an object with host/query/punycode fields.
func decodeServer(v any) (*Server, error) {
	switch val := v.(type) {
	case string:
		return &Server{Host: val, Query: DefaultQuery}, nil
	case map[string]any:
		srv := &Server{}
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:  srv,
			TagName: "mapstructure",
		})
		if err != nil {
			return nil, err
		}
		if err := decoder.Decode(val); err != nil {
			return nil, err
		}
		if srv.Query == "" {
			srv.Query = DefaultQuery
		}
		return srv, nil
	default:
		return nil, fmt.Errorf("expected a host string or an object, got %T", v)
	}
}

// Server returns the server responsible for the given zone, or nil.
// A leading dot is stripped and the zone is lowercased before lookup.
func (w *WhoIs) Server(zone string) *Server {
	zone = strings.ToLower(strings.TrimPrefix(zone, "."))
	return w.servers[zone]
}

// IPServer returns the special target used for IP address and AS number
// lookups, or nil when the map does not define one.
func (w *WhoIs) IPServer() *Server {
	return w.special["ip"]
}

// Len returns the number of server entries, special targets included.
func (w *WhoIs) Len() int {
	return len(w.servers) + len(w.special)
}
