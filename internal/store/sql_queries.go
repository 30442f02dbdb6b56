// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-bot/models"
)

// DateLayout is the text format of the date_added column, in local time.
const DateLayout = "2006-01-02 15:04:05"

var credentialsTable = models.CredentialRecord{}.TableName()

var credentialColumns = []string{
	"id",
	"user_id",
	"account",
	"encrypted_password",
	"date_added",
}

func buildInsertCredentialQuery(b sq.StatementBuilderType, rec models.CredentialRecord) (string, []any, error) {
	return b.Insert(credentialsTable).
		Columns("user_id", "account", "encrypted_password", "date_added").
		Values(rec.UserID, rec.Account, rec.EncryptedSecret, rec.CreatedAt.Local().Format(DateLayout)).
		Suffix("RETURNING id").
		ToSql()
}

func buildExistsCredentialQuery(b sq.StatementBuilderType, userID int64, account string) (string, []any, error) {
	return b.Select("1").
		From(credentialsTable).
		Where(sq.Eq{"user_id": userID, "account": account}).
		Limit(1).
		ToSql()
}

func buildListCredentialsQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(credentialColumns...).
		From(credentialsTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
}

func buildDeleteCredentialsQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Delete(credentialsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
