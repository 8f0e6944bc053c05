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
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/hiero-ledger/hiero-sdk-go/v2/proto/services"
	"github.com/pkg/errors"

	"github.com/hiero-ledger/hiero-client-go/crypto"
	"github.com/hiero-ledger/hiero-client-go/tools"
)

// AccountID addresses an account as shard.realm.num, optionally carrying an
// alias public key for accounts referenced by alias before their number is
// known.
type AccountID struct {
	Shard    uint64
	Realm    uint64
	Account  uint64
	AliasKey *crypto.PublicKey
}

// AccountIDFromString parses the canonical shard.realm.num form.
func AccountIDFromString(s string) (AccountID, error) {
	shard, realm, num, err := parseEntityId(s)
	if err != nil {
		return AccountID{}, err
	}
	return AccountID{Shard: shard, Realm: realm, Account: num}, nil
}

func AccountIDFromProto(pb *services.AccountID) (AccountID, error) {
	if pb == nil {
		return AccountID{}, errors.Errorf("nil AccountID message")
	}

	id := AccountID{Shard: uint64(pb.ShardNum), Realm: uint64(pb.RealmNum)}
	switch account := pb.GetAccount().(type) {
	case *services.AccountID_AccountNum:
		id.Account = uint64(account.AccountNum)
	case *services.AccountID_Alias:
		aliasKey, err := crypto.PublicKeyFromAliasBytes(account.Alias)
		if err != nil {
			return AccountID{}, err
		}
		id.AliasKey = &aliasKey
	}
	return id, nil
}

func (id AccountID) ToProto() *services.AccountID {
	pb := &services.AccountID{ShardNum: int64(id.Shard), RealmNum: int64(id.Realm)}
	if id.AliasKey != nil {
		alias, _ := id.AliasKey.ToAliasBytes()
		pb.Account = &services.AccountID_Alias{Alias: alias}
	} else {
		pb.Account = &services.AccountID_AccountNum{AccountNum: int64(id.Account)}
	}
	return pb
}

func (id AccountID) IsZero() bool {
	return id.Shard == 0 && id.Realm == 0 && id.Account == 0 && id.AliasKey == nil
}

// Equals compares all four fields, including the alias key bytes.
func (id AccountID) Equals(other AccountID) bool {
	if id.Shard != other.Shard || id.Realm != other.Realm || id.Account != other.Account {
		return false
	}
	switch {
	case id.AliasKey == nil && other.AliasKey == nil:
		return true
	case id.AliasKey == nil || other.AliasKey == nil:
		return false
	}
	return id.AliasKey.Equals(*other.AliasKey)
}

func (id AccountID) String() string {
	if id.AliasKey != nil {
		return fmt.Sprintf("%d.%d.%s", id.Shard, id.Realm, hex.EncodeToString(id.AliasKey.BytesRaw()))
	}
	return fmt.Sprintf("%d.%d.%d", id.Shard, id.Realm, id.Account)
}

// FileID addresses a stored file.
type FileID struct {
	Shard uint64
	Realm uint64
	File  uint64
}

func FileIDFromString(s string) (FileID, error) {
	shard, realm, num, err := parseEntityId(s)
	if err != nil {
		return FileID{}, err
	}
	return FileID{Shard: shard, Realm: realm, File: num}, nil
}

func FileIDFromProto(pb *services.FileID) FileID {
	if pb == nil {
		return FileID{}
	}
	return FileID{Shard: uint64(pb.ShardNum), Realm: uint64(pb.RealmNum), File: uint64(pb.FileNum)}
}

func (id FileID) ToProto() *services.FileID {
	return &services.FileID{ShardNum: int64(id.Shard), RealmNum: int64(id.Realm), FileNum: int64(id.File)}
}

func (id FileID) String() string {
	return fmt.Sprintf("%d.%d.%d", id.Shard, id.Realm, id.File)
}

// TopicID addresses a consensus topic.
type TopicID struct {
	Shard uint64
	Realm uint64
	Topic uint64
}

func TopicIDFromString(s string) (TopicID, error) {
	shard, realm, num, err := parseEntityId(s)
	if err != nil {
		return TopicID{}, err
	}
	return TopicID{Shard: shard, Realm: realm, Topic: num}, nil
}

func TopicIDFromProto(pb *services.TopicID) TopicID {
	if pb == nil {
		return TopicID{}
	}
	return TopicID{Shard: uint64(pb.ShardNum), Realm: uint64(pb.RealmNum), Topic: uint64(pb.TopicNum)}
}

func (id TopicID) ToProto() *services.TopicID {
	return &services.TopicID{ShardNum: int64(id.Shard), RealmNum: int64(id.Realm), TopicNum: int64(id.Topic)}
}

func (id TopicID) String() string {
	return fmt.Sprintf("%d.%d.%d", id.Shard, id.Realm, id.Topic)
}

// TokenID addresses a token.
type TokenID struct {
	Shard uint64
	Realm uint64
	Token uint64
}

func TokenIDFromString(s string) (TokenID, error) {
	shard, realm, num, err := parseEntityId(s)
	if err != nil {
		return TokenID{}, err
	}
	return TokenID{Shard: shard, Realm: realm, Token: num}, nil
}

func TokenIDFromProto(pb *services.TokenID) TokenID {
	if pb == nil {
		return TokenID{}
	}
	return TokenID{Shard: uint64(pb.ShardNum), Realm: uint64(pb.RealmNum), Token: uint64(pb.TokenNum)}
}

func (id TokenID) ToProto() *services.TokenID {
	return &services.TokenID{ShardNum: int64(id.Shard), RealmNum: int64(id.Realm), TokenNum: int64(id.Token)}
}

func (id TokenID) String() string {
	return fmt.Sprintf("%d.%d.%d", id.Shard, id.Realm, id.Token)
}

func parseEntityId(s string) (shard, realm, num uint64, _ error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return 0, 0, 0, errors.Errorf("invalid entity id %q, expect shard.realm.num", s)
	}

	values := make([]uint64, 3)
	for index, part := range parts {
		value, err := tools.ToUint64(part)
		if err != nil {
			return 0, 0, 0, errors.Errorf("invalid entity id %q, %q is not a non-negative integer", s, part)
		}
		values[index] = value
	}
	return values[0], values[1], values[2], nil
}
