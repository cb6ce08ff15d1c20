// Code generated by ent, DO NOT EDIT.

package webhook

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agent-orchestra/orchestra/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Webhook {
	return predicate.Webhook(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Webhook {
	return predicate.Webhook(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Webhook {
	return predicate.Webhook(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Webhook {
	return predicate.Webhook(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Webhook {
	return predicate.Webhook(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Webhook {
	return predicate.Webhook(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Webhook {
	return predicate.Webhook(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Webhook {
	return predicate.Webhook(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Webhook {
	return predicate.Webhook(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Webhook {
	return predicate.Webhook(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Webhook {
	return predicate.Webhook(sql.FieldContainsFold(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldEQ(FieldOwnerID, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldEQ(FieldURL, v))
}

// SecretEncrypted applies equality check predicate on the "secret_encrypted" field. It's identical to SecretEncryptedEQ.
func SecretEncrypted(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldEQ(FieldSecretEncrypted, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.Webhook {
	return predicate.Webhook(sql.FieldEQ(FieldActive, v))
}

// DisabledReason applies equality check predicate on the "disabled_reason" field. It's identical to DisabledReasonEQ.
func DisabledReason(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldEQ(FieldDisabledReason, v))
}

// DisabledAt applies equality check predicate on the "disabled_at" field. It's identical to DisabledAtEQ.
func DisabledAt(v time.Time) predicate.Webhook {
	return predicate.Webhook(sql.FieldEQ(FieldDisabledAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Webhook {
	return predicate.Webhook(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Webhook {
	return predicate.Webhook(sql.FieldEQ(FieldUpdatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.Webhook {
	return predicate.Webhook(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.Webhook {
	return predicate.Webhook(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldContainsFold(FieldOwnerID, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.Webhook {
	return predicate.Webhook(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.Webhook {
	return predicate.Webhook(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldContainsFold(FieldURL, v))
}

// SecretEncryptedEQ applies the EQ predicate on the "secret_encrypted" field.
func SecretEncryptedEQ(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldEQ(FieldSecretEncrypted, v))
}

// SecretEncryptedNEQ applies the NEQ predicate on the "secret_encrypted" field.
func SecretEncryptedNEQ(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldNEQ(FieldSecretEncrypted, v))
}

// SecretEncryptedIn applies the In predicate on the "secret_encrypted" field.
func SecretEncryptedIn(vs ...string) predicate.Webhook {
	return predicate.Webhook(sql.FieldIn(FieldSecretEncrypted, vs...))
}

// SecretEncryptedNotIn applies the NotIn predicate on the "secret_encrypted" field.
func SecretEncryptedNotIn(vs ...string) predicate.Webhook {
	return predicate.Webhook(sql.FieldNotIn(FieldSecretEncrypted, vs...))
}

// SecretEncryptedGT applies the GT predicate on the "secret_encrypted" field.
func SecretEncryptedGT(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldGT(FieldSecretEncrypted, v))
}

// SecretEncryptedGTE applies the GTE predicate on the "secret_encrypted" field.
func SecretEncryptedGTE(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldGTE(FieldSecretEncrypted, v))
}

// SecretEncryptedLT applies the LT predicate on the "secret_encrypted" field.
func SecretEncryptedLT(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldLT(FieldSecretEncrypted, v))
}

// SecretEncryptedLTE applies the LTE predicate on the "secret_encrypted" field.
func SecretEncryptedLTE(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldLTE(FieldSecretEncrypted, v))
}

// SecretEncryptedContains applies the Contains predicate on the "secret_encrypted" field.
func SecretEncryptedContains(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldContains(FieldSecretEncrypted, v))
}

// SecretEncryptedHasPrefix applies the HasPrefix predicate on the "secret_encrypted" field.
func SecretEncryptedHasPrefix(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldHasPrefix(FieldSecretEncrypted, v))
}

// SecretEncryptedHasSuffix applies the HasSuffix predicate on the "secret_encrypted" field.
func SecretEncryptedHasSuffix(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldHasSuffix(FieldSecretEncrypted, v))
}

// SecretEncryptedEqualFold applies the EqualFold predicate on the "secret_encrypted" field.
func SecretEncryptedEqualFold(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldEqualFold(FieldSecretEncrypted, v))
}

// SecretEncryptedContainsFold applies the ContainsFold predicate on the "secret_encrypted" field.
func SecretEncryptedContainsFold(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldContainsFold(FieldSecretEncrypted, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.Webhook {
	return predicate.Webhook(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.Webhook {
	return predicate.Webhook(sql.FieldNEQ(FieldActive, v))
}

// DisabledReasonEQ applies the EQ predicate on the "disabled_reason" field.
func DisabledReasonEQ(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldEQ(FieldDisabledReason, v))
}

// DisabledReasonNEQ applies the NEQ predicate on the "disabled_reason" field.
func DisabledReasonNEQ(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldNEQ(FieldDisabledReason, v))
}

// DisabledReasonIn applies the In predicate on the "disabled_reason" field.
func DisabledReasonIn(vs ...string) predicate.Webhook {
	return predicate.Webhook(sql.FieldIn(FieldDisabledReason, vs...))
}

// DisabledReasonNotIn applies the NotIn predicate on the "disabled_reason" field.
func DisabledReasonNotIn(vs ...string) predicate.Webhook {
	return predicate.Webhook(sql.FieldNotIn(FieldDisabledReason, vs...))
}

// DisabledReasonGT applies the GT predicate on the "disabled_reason" field.
func DisabledReasonGT(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldGT(FieldDisabledReason, v))
}

// DisabledReasonGTE applies the GTE predicate on the "disabled_reason" field.
func DisabledReasonGTE(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldGTE(FieldDisabledReason, v))
}

// DisabledReasonLT applies the LT predicate on the "disabled_reason" field.
func DisabledReasonLT(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldLT(FieldDisabledReason, v))
}

// DisabledReasonLTE applies the LTE predicate on the "disabled_reason" field.
func DisabledReasonLTE(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldLTE(FieldDisabledReason, v))
}

// DisabledReasonContains applies the Contains predicate on the "disabled_reason" field.
func DisabledReasonContains(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldContains(FieldDisabledReason, v))
}

// DisabledReasonHasPrefix applies the HasPrefix predicate on the "disabled_reason" field.
func DisabledReasonHasPrefix(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldHasPrefix(FieldDisabledReason, v))
}

// DisabledReasonHasSuffix applies the HasSuffix predicate on the "disabled_reason" field.
func DisabledReasonHasSuffix(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldHasSuffix(FieldDisabledReason, v))
}

// DisabledReasonIsNil applies the IsNil predicate on the "disabled_reason" field.
func DisabledReasonIsNil() predicate.Webhook {
	return predicate.Webhook(sql.FieldIsNull(FieldDisabledReason))
}

// DisabledReasonNotNil applies the NotNil predicate on the "disabled_reason" field.
func DisabledReasonNotNil() predicate.Webhook {
	return predicate.Webhook(sql.FieldNotNull(FieldDisabledReason))
}

// DisabledReasonEqualFold applies the EqualFold predicate on the "disabled_reason" field.
func DisabledReasonEqualFold(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldEqualFold(FieldDisabledReason, v))
}

// DisabledReasonContainsFold applies the ContainsFold predicate on the "disabled_reason" field.
func DisabledReasonContainsFold(v string) predicate.Webhook {
	return predicate.Webhook(sql.FieldContainsFold(FieldDisabledReason, v))
}

// DisabledAtEQ applies the EQ predicate on the "disabled_at" field.
func DisabledAtEQ(v time.Time) predicate.Webhook {
	return predicate.Webhook(sql.FieldEQ(FieldDisabledAt, v))
}

// DisabledAtNEQ applies the NEQ predicate on the "disabled_at" field.
func DisabledAtNEQ(v time.Time) predicate.Webhook {
	return predicate.Webhook(sql.FieldNEQ(FieldDisabledAt, v))
}

// DisabledAtIn applies the In predicate on the "disabled_at" field.
func DisabledAtIn(vs ...time.Time) predicate.Webhook {
	return predicate.Webhook(sql.FieldIn(FieldDisabledAt, vs...))
}

// DisabledAtNotIn applies the NotIn predicate on the "disabled_at" field.
func DisabledAtNotIn(vs ...time.Time) predicate.Webhook {
	return predicate.Webhook(sql.FieldNotIn(FieldDisabledAt, vs...))
}

// DisabledAtGT applies the GT predicate on the "disabled_at" field.
func DisabledAtGT(v time.Time) predicate.Webhook {
	return predicate.Webhook(sql.FieldGT(FieldDisabledAt, v))
}

// DisabledAtGTE applies the GTE predicate on the "disabled_at" field.
func DisabledAtGTE(v time.Time) predicate.Webhook {
	return predicate.Webhook(sql.FieldGTE(FieldDisabledAt, v))
}

// DisabledAtLT applies the LT predicate on the "disabled_at" field.
func DisabledAtLT(v time.Time) predicate.Webhook {
	return predicate.Webhook(sql.FieldLT(FieldDisabledAt, v))
}

// DisabledAtLTE applies the LTE predicate on the "disabled_at" field.
func DisabledAtLTE(v time.Time) predicate.Webhook {
	return predicate.Webhook(sql.FieldLTE(FieldDisabledAt, v))
}

// DisabledAtIsNil applies the IsNil predicate on the "disabled_at" field.
func DisabledAtIsNil() predicate.Webhook {
	return predicate.Webhook(sql.FieldIsNull(FieldDisabledAt))
}

// DisabledAtNotNil applies the NotNil predicate on the "disabled_at" field.
func DisabledAtNotNil() predicate.Webhook {
	return predicate.Webhook(sql.FieldNotNull(FieldDisabledAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Webhook {
	return predicate.Webhook(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Webhook {
	return predicate.Webhook(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Webhook {
	return predicate.Webhook(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Webhook {
	return predicate.Webhook(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Webhook {
	return predicate.Webhook(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Webhook {
	return predicate.Webhook(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Webhook {
	return predicate.Webhook(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Webhook {
	return predicate.Webhook(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Webhook {
	return predicate.Webhook(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Webhook {
	return predicate.Webhook(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Webhook {
	return predicate.Webhook(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Webhook {
	return predicate.Webhook(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Webhook {
	return predicate.Webhook(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Webhook {
	return predicate.Webhook(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Webhook {
	return predicate.Webhook(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Webhook {
	return predicate.Webhook(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasOwner applies the HasEdge predicate on the "owner" edge.
func HasOwner() predicate.Webhook {
	return predicate.Webhook(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OwnerTable, OwnerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOwnerWith applies the HasEdge predicate on the "owner" edge with a given conditions (other predicates).
func HasOwnerWith(preds ...predicate.User) predicate.Webhook {
	return predicate.Webhook(func(s *sql.Selector) {
		step := newOwnerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDeliveries applies the HasEdge predicate on the "deliveries" edge.
func HasDeliveries() predicate.Webhook {
	return predicate.Webhook(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DeliveriesTable, DeliveriesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDeliveriesWith applies the HasEdge predicate on the "deliveries" edge with a given conditions (other predicates).
func HasDeliveriesWith(preds ...predicate.WebhookDelivery) predicate.Webhook {
	return predicate.Webhook(func(s *sql.Selector) {
		step := newDeliveriesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Webhook) predicate.Webhook {
	return predicate.Webhook(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Webhook) predicate.Webhook {
	return predicate.Webhook(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Webhook) predicate.Webhook {
	return predicate.Webhook(sql.NotPredicates(p))
}
