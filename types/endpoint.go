/*
 * Copyright (C) 2019-2025 Hedera Hashgraph, LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

import (
	"fmt"
	"net"
	"strings"

	"github.com/hiero-ledger/hiero-sdk-go/v2/proto/services"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
)

const (
	// DefaultEndpointPort is the canonical plaintext node port.
	DefaultEndpointPort int32 = 50211
	legacyEndpointPort  int32 = 50111
)

// Endpoint is one network address of a consensus node: a 4-byte IPv4 address
// and/or a domain name, plus a port. A usable endpoint has at least one of
// address and domain name.
type Endpoint struct {
	address    []byte
	port       int32
	domainName string
}

func NewEndpoint() *Endpoint {
	return &Endpoint{}
}

// EndpointFromProto decodes a wire ServiceEndpoint. Legacy wire records carry
// port 0 or 50111; both decode to the canonical default port. The mapping
// applies only to wire data, never to endpoints built from user input.
func EndpointFromProto(pb *services.ServiceEndpoint) *Endpoint {
	port := pb.GetPort()
	if port == 0 || port == legacyEndpointPort {
		port = DefaultEndpointPort
	}
	return &Endpoint{
		address:    append([]byte(nil), pb.GetIpAddressV4()...),
		port:       port,
		domainName: pb.GetDomainName(),
	}
}

type endpointRecord struct {
	IpAddressV4 string `mapstructure:"ip_address_v4"`
	Port        int32  `mapstructure:"port"`
	DomainName  string `mapstructure:"domain_name"`
}

// EndpointFromMap builds an Endpoint from a structured address-book record.
// All three keys must be present, even with empty values; a record missing any
// of them is malformed and the error names the required keys.
func EndpointFromMap(data map[string]interface{}) (*Endpoint, error) {
	for _, key := range []string{"ip_address_v4", "port", "domain_name"} {
		if _, ok := data[key]; !ok {
			return nil, errors.Errorf(
				"endpoint record must contain keys ip_address_v4, port, and domain_name; missing %q", key)
		}
	}

	var record endpointRecord
	if err := mapstructure.Decode(data, &record); err != nil {
		return nil, errors.Wrap(err, "failed to decode endpoint record")
	}

	endpoint := &Endpoint{port: record.Port, domainName: record.DomainName}
	if record.IpAddressV4 != "" {
		ip := net.ParseIP(record.IpAddressV4)
		if ip == nil || ip.To4() == nil {
			return nil, errors.Errorf("invalid IPv4 address %q in endpoint record", record.IpAddressV4)
		}
		endpoint.address = ip.To4()
	}
	return endpoint, nil
}

func (e *Endpoint) SetAddress(address []byte) *Endpoint {
	e.address = append([]byte(nil), address...)
	return e
}

func (e *Endpoint) SetPort(port int32) *Endpoint {
	e.port = port
	return e
}

func (e *Endpoint) SetDomainName(domainName string) *Endpoint {
	e.domainName = domainName
	return e
}

func (e *Endpoint) Address() []byte {
	return append([]byte(nil), e.address...)
}

func (e *Endpoint) Port() int32 {
	return e.port
}

func (e *Endpoint) DomainName() string {
	return e.domainName
}

// ToProto encodes the endpoint, substituting protocol defaults (empty bytes,
// zero, empty string) for unset fields.
func (e *Endpoint) ToProto() *services.ServiceEndpoint {
	return &services.ServiceEndpoint{
		IpAddressV4: append([]byte(nil), e.address...),
		Port:        e.port,
		DomainName:  e.domainName,
	}
}

// ConnectString renders "<address>:<port>" for dialing. Both the address and
// the port must be present; callers rely on the result being connectable, so
// a partial endpoint is an error rather than a degraded string.
func (e *Endpoint) ConnectString() (string, error) {
	if e.port == 0 {
		return "", errors.Errorf("endpoint has no port")
	}
	switch {
	case len(e.address) == net.IPv4len:
		return fmt.Sprintf("%s:%d", net.IP(e.address).String(), e.port), nil
	case len(e.address) != 0:
		return "", errors.Errorf("endpoint address must be 4 bytes, have %d", len(e.address))
	case e.domainName != "":
		return fmt.Sprintf("%s:%d", strings.TrimSuffix(e.domainName, "."), e.port), nil
	}
	return "", errors.Errorf("endpoint has neither address nor domain name")
}
