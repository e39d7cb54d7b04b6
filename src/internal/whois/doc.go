// Package whois loads the whois server map used for AS and prefix lookups.
//
// The map is a JSON object of zone (TLD) to server entry. An entry is
// either a bare host string or an object with host, query, and punycode
// fields; the "_" key holds special lookup targets, notably "ip" for
// address and AS number queries. Only configuration loading, validation,
// and lookup live here; the network side of whois resolution is a
// separate consumer.
package whois
