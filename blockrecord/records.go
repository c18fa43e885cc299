// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2019-2021 Soramitsu Co., Ltd.
// Use of this source code is governed by an Apache-2.0
// license that can be found in the LICENSE file.

package blockrecord

import (
	"fmt"

	"github.com/hyperledger/iroha-sub006/blockdigest"
	"github.com/hyperledger/iroha-sub006/wsvrecord"
)

// Block - one element of the append-only chain
//
// height is 1-based; a block is never mutated once appended
type Block struct {
	Height        uint64             `codec:"height"`
	PreviousBlock blockdigest.Digest `codec:"prev_block"`
	CreatedAt     uint64             `codec:"created_at"` // unix milliseconds
	Transactions  []Transaction      `codec:"transactions"`
}

// Transaction - an ordered list of commands run as one actor
type Transaction struct {
	CreatorAccountID wsvrecord.AccountID `codec:"creator_account_id"`
	CreatedAt        uint64              `codec:"created_at"`
	Commands         []Command           `codec:"commands"`
}

// Command - exactly one of the pointer fields is non-nil
type Command struct {
	AddPeer          *AddPeer          `codec:"add_peer,omitempty"`
	AddSignatory     *AddSignatory     `codec:"add_signatory,omitempty"`
	AppendRole       *AppendRole       `codec:"append_role,omitempty"`
	CallDataModel    *CallDataModel    `codec:"call_data_model,omitempty"`
	CreateAccount    *CreateAccount    `codec:"create_account,omitempty"`
	CreateAsset      *CreateAsset      `codec:"create_asset,omitempty"`
	CreateDomain     *CreateDomain     `codec:"create_domain,omitempty"`
	CreateRole       *CreateRole       `codec:"create_role,omitempty"`
	DetachRole       *DetachRole       `codec:"detach_role,omitempty"`
	GrantPermission  *GrantPermission  `codec:"grant_permission,omitempty"`
	RemovePeer       *RemovePeer       `codec:"remove_peer,omitempty"`
	RemoveSignatory  *RemoveSignatory  `codec:"remove_signatory,omitempty"`
	RevokePermission *RevokePermission `codec:"revoke_permission,omitempty"`
	SetAccountDetail *SetAccountDetail `codec:"set_account_detail,omitempty"`
	SetBalance       *SetBalance       `codec:"set_balance,omitempty"`
	SetQuorum        *SetQuorum        `codec:"set_quorum,omitempty"`
}

// AddPeer - record a new network peer
type AddPeer struct {
	Peer wsvrecord.Peer `codec:"peer"`
}

// RemovePeer - remove a peer and its certificate
type RemovePeer struct {
	PublicKey wsvrecord.PublicKey `codec:"public_key"`
}

// CreateRole - create a uniquely named role with its permission set
type CreateRole struct {
	RoleName    string                      `codec:"role_name"`
	Permissions wsvrecord.RolePermissionSet `codec:"permissions"`
}

// AppendRole - attach an existing role to an account
type AppendRole struct {
	AccountID wsvrecord.AccountID `codec:"account_id"`
	RoleName  string              `codec:"role_name"`
}

// DetachRole - remove a role from an account
type DetachRole struct {
	AccountID wsvrecord.AccountID `codec:"account_id"`
	RoleName  string              `codec:"role_name"`
}

// GrantPermission - the creator grants the grantee a permission over
// the creator's own account
type GrantPermission struct {
	Grantee    wsvrecord.AccountID           `codec:"grantee"`
	Permission wsvrecord.GrantablePermission `codec:"permission"`
}

// RevokePermission - the creator revokes a previously granted permission
type RevokePermission struct {
	Grantee    wsvrecord.AccountID           `codec:"grantee"`
	Permission wsvrecord.GrantablePermission `codec:"permission"`
}

// CreateAccount - create an account in an existing domain with its
// first signatory and the domain's default role
type CreateAccount struct {
	AccountName string              `codec:"account_name"`
	DomainID    string              `codec:"domain_id"`
	PublicKey   wsvrecord.PublicKey `codec:"public_key"`
}

// SetQuorum - replace an account's signature quorum
type SetQuorum struct {
	AccountID wsvrecord.AccountID `codec:"account_id"`
	Quorum    uint32              `codec:"quorum"`
}

// SetAccountDetail - set one key/value pair of the account detail blob
type SetAccountDetail struct {
	AccountID wsvrecord.AccountID `codec:"account_id"`
	Key       string              `codec:"key"`
	Value     string              `codec:"value"`
}

// CreateDomain - create a domain with its default role
type CreateDomain struct {
	DomainID    string `codec:"domain_id"`
	DefaultRole string `codec:"default_role"`
}

// CreateAsset - create an asset with its decimal precision
type CreateAsset struct {
	AssetName string `codec:"asset_name"`
	DomainID  string `codec:"domain_id"`
	Precision uint8  `codec:"precision"`
}

// SetBalance - overwrite one account's balance of one asset
type SetBalance struct {
	AccountID wsvrecord.AccountID `codec:"account_id"`
	AssetID   wsvrecord.AssetID   `codec:"asset_id"`
	Amount    string              `codec:"amount"`
}

// AddSignatory - attach a public key to an account
type AddSignatory struct {
	AccountID wsvrecord.AccountID `codec:"account_id"`
	PublicKey wsvrecord.PublicKey `codec:"public_key"`
}

// RemoveSignatory - detach a public key from an account
type RemoveSignatory struct {
	AccountID wsvrecord.AccountID `codec:"account_id"`
	PublicKey wsvrecord.PublicKey `codec:"public_key"`
}

// CallDataModel - call into an application defined data model
// extension; opaque to the core
type CallDataModel struct {
	Target  string `codec:"target"`
	Payload []byte `codec:"payload"`
}

// Name - the name of the single populated command
func (c Command) Name() string {
	switch {
	case nil != c.AddPeer:
		return "AddPeer"
	case nil != c.AddSignatory:
		return "AddSignatory"
	case nil != c.AppendRole:
		return "AppendRole"
	case nil != c.CallDataModel:
		return "CallDataModel"
	case nil != c.CreateAccount:
		return "CreateAccount"
	case nil != c.CreateAsset:
		return "CreateAsset"
	case nil != c.CreateDomain:
		return "CreateDomain"
	case nil != c.CreateRole:
		return "CreateRole"
	case nil != c.DetachRole:
		return "DetachRole"
	case nil != c.GrantPermission:
		return "GrantPermission"
	case nil != c.RemovePeer:
		return "RemovePeer"
	case nil != c.RemoveSignatory:
		return "RemoveSignatory"
	case nil != c.RevokePermission:
		return "RevokePermission"
	case nil != c.SetAccountDetail:
		return "SetAccountDetail"
	case nil != c.SetBalance:
		return "SetBalance"
	case nil != c.SetQuorum:
		return "SetQuorum"
	default:
		return "Empty"
	}
}

// String - command name with an argument summary, used when wrapping
// errors with command identifying context
func (c Command) String() string {
	switch {
	case nil != c.AddPeer:
		return fmt.Sprintf("AddPeer key=%s address=%s", c.AddPeer.Peer.PublicKey, c.AddPeer.Peer.Address)
	case nil != c.AddSignatory:
		return fmt.Sprintf("AddSignatory account=%s key=%s", c.AddSignatory.AccountID, c.AddSignatory.PublicKey)
	case nil != c.AppendRole:
		return fmt.Sprintf("AppendRole account=%s role=%s", c.AppendRole.AccountID, c.AppendRole.RoleName)
	case nil != c.CallDataModel:
		return fmt.Sprintf("CallDataModel target=%s", c.CallDataModel.Target)
	case nil != c.CreateAccount:
		return fmt.Sprintf("CreateAccount name=%s domain=%s", c.CreateAccount.AccountName, c.CreateAccount.DomainID)
	case nil != c.CreateAsset:
		return fmt.Sprintf("CreateAsset name=%s domain=%s precision=%d", c.CreateAsset.AssetName, c.CreateAsset.DomainID, c.CreateAsset.Precision)
	case nil != c.CreateDomain:
		return fmt.Sprintf("CreateDomain domain=%s default-role=%s", c.CreateDomain.DomainID, c.CreateDomain.DefaultRole)
	case nil != c.CreateRole:
		return fmt.Sprintf("CreateRole role=%s", c.CreateRole.RoleName)
	case nil != c.DetachRole:
		return fmt.Sprintf("DetachRole account=%s role=%s", c.DetachRole.AccountID, c.DetachRole.RoleName)
	case nil != c.GrantPermission:
		return fmt.Sprintf("GrantPermission grantee=%s permission=%d", c.GrantPermission.Grantee, c.GrantPermission.Permission)
	case nil != c.RemovePeer:
		return fmt.Sprintf("RemovePeer key=%s", c.RemovePeer.PublicKey)
	case nil != c.RemoveSignatory:
		return fmt.Sprintf("RemoveSignatory account=%s key=%s", c.RemoveSignatory.AccountID, c.RemoveSignatory.PublicKey)
	case nil != c.RevokePermission:
		return fmt.Sprintf("RevokePermission grantee=%s permission=%d", c.RevokePermission.Grantee, c.RevokePermission.Permission)
	case nil != c.SetAccountDetail:
		return fmt.Sprintf("SetAccountDetail account=%s key=%s", c.SetAccountDetail.AccountID, c.SetAccountDetail.Key)
	case nil != c.SetBalance:
		return fmt.Sprintf("SetBalance account=%s asset=%s amount=%s", c.SetBalance.AccountID, c.SetBalance.AssetID, c.SetBalance.Amount)
	case nil != c.SetQuorum:
		return fmt.Sprintf("SetQuorum account=%s quorum=%d", c.SetQuorum.AccountID, c.SetQuorum.Quorum)
	default:
		return "Empty"
	}
}
