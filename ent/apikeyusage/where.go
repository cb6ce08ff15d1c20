// Code generated by ent, DO NOT EDIT.

package apikeyusage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/agent-orchestra/orchestra/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldContainsFold(FieldID, id))
}

// APIKeyID applies equality check predicate on the "api_key_id" field. It's identical to APIKeyIDEQ.
func APIKeyID(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldEQ(FieldAPIKeyID, v))
}

// Endpoint applies equality check predicate on the "endpoint" field. It's identical to EndpointEQ.
func Endpoint(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldEQ(FieldEndpoint, v))
}

// Method applies equality check predicate on the "method" field. It's identical to MethodEQ.
func Method(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldEQ(FieldMethod, v))
}

// StatusCode applies equality check predicate on the "status_code" field. It's identical to StatusCodeEQ.
func StatusCode(v int) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldEQ(FieldStatusCode, v))
}

// IP applies equality check predicate on the "ip" field. It's identical to IPEQ.
func IP(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldEQ(FieldIP, v))
}

// UserAgent applies equality check predicate on the "user_agent" field. It's identical to UserAgentEQ.
func UserAgent(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldEQ(FieldUserAgent, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldEQ(FieldCreatedAt, v))
}

// APIKeyIDEQ applies the EQ predicate on the "api_key_id" field.
func APIKeyIDEQ(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldEQ(FieldAPIKeyID, v))
}

// APIKeyIDNEQ applies the NEQ predicate on the "api_key_id" field.
func APIKeyIDNEQ(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldNEQ(FieldAPIKeyID, v))
}

// APIKeyIDIn applies the In predicate on the "api_key_id" field.
func APIKeyIDIn(vs ...string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldIn(FieldAPIKeyID, vs...))
}

// APIKeyIDNotIn applies the NotIn predicate on the "api_key_id" field.
func APIKeyIDNotIn(vs ...string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldNotIn(FieldAPIKeyID, vs...))
}

// APIKeyIDGT applies the GT predicate on the "api_key_id" field.
func APIKeyIDGT(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldGT(FieldAPIKeyID, v))
}

// APIKeyIDGTE applies the GTE predicate on the "api_key_id" field.
func APIKeyIDGTE(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldGTE(FieldAPIKeyID, v))
}

// APIKeyIDLT applies the LT predicate on the "api_key_id" field.
func APIKeyIDLT(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldLT(FieldAPIKeyID, v))
}

// APIKeyIDLTE applies the LTE predicate on the "api_key_id" field.
func APIKeyIDLTE(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldLTE(FieldAPIKeyID, v))
}

// APIKeyIDContains applies the Contains predicate on the "api_key_id" field.
func APIKeyIDContains(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldContains(FieldAPIKeyID, v))
}

// APIKeyIDHasPrefix applies the HasPrefix predicate on the "api_key_id" field.
func APIKeyIDHasPrefix(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldHasPrefix(FieldAPIKeyID, v))
}

// APIKeyIDHasSuffix applies the HasSuffix predicate on the "api_key_id" field.
func APIKeyIDHasSuffix(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldHasSuffix(FieldAPIKeyID, v))
}

// APIKeyIDEqualFold applies the EqualFold predicate on the "api_key_id" field.
func APIKeyIDEqualFold(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldEqualFold(FieldAPIKeyID, v))
}

// APIKeyIDContainsFold applies the ContainsFold predicate on the "api_key_id" field.
func APIKeyIDContainsFold(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldContainsFold(FieldAPIKeyID, v))
}

// EndpointEQ applies the EQ predicate on the "endpoint" field.
func EndpointEQ(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldEQ(FieldEndpoint, v))
}

// EndpointNEQ applies the NEQ predicate on the "endpoint" field.
func EndpointNEQ(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldNEQ(FieldEndpoint, v))
}

// EndpointIn applies the In predicate on the "endpoint" field.
func EndpointIn(vs ...string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldIn(FieldEndpoint, vs...))
}

// EndpointNotIn applies the NotIn predicate on the "endpoint" field.
func EndpointNotIn(vs ...string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldNotIn(FieldEndpoint, vs...))
}

// EndpointGT applies the GT predicate on the "endpoint" field.
func EndpointGT(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldGT(FieldEndpoint, v))
}

// EndpointGTE applies the GTE predicate on the "endpoint" field.
func EndpointGTE(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldGTE(FieldEndpoint, v))
}

// EndpointLT applies the LT predicate on the "endpoint" field.
func EndpointLT(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldLT(FieldEndpoint, v))
}

// EndpointLTE applies the LTE predicate on the "endpoint" field.
func EndpointLTE(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldLTE(FieldEndpoint, v))
}

// EndpointContains applies the Contains predicate on the "endpoint" field.
func EndpointContains(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldContains(FieldEndpoint, v))
}

// EndpointHasPrefix applies the HasPrefix predicate on the "endpoint" field.
func EndpointHasPrefix(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldHasPrefix(FieldEndpoint, v))
}

// EndpointHasSuffix applies the HasSuffix predicate on the "endpoint" field.
func EndpointHasSuffix(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldHasSuffix(FieldEndpoint, v))
}

// EndpointEqualFold applies the EqualFold predicate on the "endpoint" field.
func EndpointEqualFold(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldEqualFold(FieldEndpoint, v))
}

// EndpointContainsFold applies the ContainsFold predicate on the "endpoint" field.
func EndpointContainsFold(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldContainsFold(FieldEndpoint, v))
}

// MethodEQ applies the EQ predicate on the "method" field.
func MethodEQ(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldEQ(FieldMethod, v))
}

// MethodNEQ applies the NEQ predicate on the "method" field.
func MethodNEQ(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldNEQ(FieldMethod, v))
}

// MethodIn applies the In predicate on the "method" field.
func MethodIn(vs ...string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldIn(FieldMethod, vs...))
}

// MethodNotIn applies the NotIn predicate on the "method" field.
func MethodNotIn(vs ...string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldNotIn(FieldMethod, vs...))
}

// MethodGT applies the GT predicate on the "method" field.
func MethodGT(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldGT(FieldMethod, v))
}

// MethodGTE applies the GTE predicate on the "method" field.
func MethodGTE(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldGTE(FieldMethod, v))
}

// MethodLT applies the LT predicate on the "method" field.
func MethodLT(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldLT(FieldMethod, v))
}

// MethodLTE applies the LTE predicate on the "method" field.
func MethodLTE(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldLTE(FieldMethod, v))
}

// MethodContains applies the Contains predicate on the "method" field.
func MethodContains(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldContains(FieldMethod, v))
}

// MethodHasPrefix applies the HasPrefix predicate on the "method" field.
func MethodHasPrefix(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldHasPrefix(FieldMethod, v))
}

// MethodHasSuffix applies the HasSuffix predicate on the "method" field.
func MethodHasSuffix(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldHasSuffix(FieldMethod, v))
}

// MethodEqualFold applies the EqualFold predicate on the "method" field.
func MethodEqualFold(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldEqualFold(FieldMethod, v))
}

// MethodContainsFold applies the ContainsFold predicate on the "method" field.
func MethodContainsFold(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldContainsFold(FieldMethod, v))
}

// StatusCodeEQ applies the EQ predicate on the "status_code" field.
func StatusCodeEQ(v int) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldEQ(FieldStatusCode, v))
}

// StatusCodeNEQ applies the NEQ predicate on the "status_code" field.
func StatusCodeNEQ(v int) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldNEQ(FieldStatusCode, v))
}

// StatusCodeIn applies the In predicate on the "status_code" field.
func StatusCodeIn(vs ...int) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldIn(FieldStatusCode, vs...))
}

// StatusCodeNotIn applies the NotIn predicate on the "status_code" field.
func StatusCodeNotIn(vs ...int) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldNotIn(FieldStatusCode, vs...))
}

// StatusCodeGT applies the GT predicate on the "status_code" field.
func StatusCodeGT(v int) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldGT(FieldStatusCode, v))
}

// StatusCodeGTE applies the GTE predicate on the "status_code" field.
func StatusCodeGTE(v int) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldGTE(FieldStatusCode, v))
}

// StatusCodeLT applies the LT predicate on the "status_code" field.
func StatusCodeLT(v int) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldLT(FieldStatusCode, v))
}

// StatusCodeLTE applies the LTE predicate on the "status_code" field.
func StatusCodeLTE(v int) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldLTE(FieldStatusCode, v))
}

// IPEQ applies the EQ predicate on the "ip" field.
func IPEQ(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldEQ(FieldIP, v))
}

// IPNEQ applies the NEQ predicate on the "ip" field.
func IPNEQ(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldNEQ(FieldIP, v))
}

// IPIn applies the In predicate on the "ip" field.
func IPIn(vs ...string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldIn(FieldIP, vs...))
}

// IPNotIn applies the NotIn predicate on the "ip" field.
func IPNotIn(vs ...string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldNotIn(FieldIP, vs...))
}

// IPGT applies the GT predicate on the "ip" field.
func IPGT(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldGT(FieldIP, v))
}

// IPGTE applies the GTE predicate on the "ip" field.
func IPGTE(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldGTE(FieldIP, v))
}

// IPLT applies the LT predicate on the "ip" field.
func IPLT(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldLT(FieldIP, v))
}

// IPLTE applies the LTE predicate on the "ip" field.
func IPLTE(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldLTE(FieldIP, v))
}

// IPContains applies the Contains predicate on the "ip" field.
func IPContains(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldContains(FieldIP, v))
}

// IPHasPrefix applies the HasPrefix predicate on the "ip" field.
func IPHasPrefix(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldHasPrefix(FieldIP, v))
}

// IPHasSuffix applies the HasSuffix predicate on the "ip" field.
func IPHasSuffix(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldHasSuffix(FieldIP, v))
}

// IPIsNil applies the IsNil predicate on the "ip" field.
func IPIsNil() predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldIsNull(FieldIP))
}

// IPNotNil applies the NotNil predicate on the "ip" field.
func IPNotNil() predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldNotNull(FieldIP))
}

// IPEqualFold applies the EqualFold predicate on the "ip" field.
func IPEqualFold(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldEqualFold(FieldIP, v))
}

// IPContainsFold applies the ContainsFold predicate on the "ip" field.
func IPContainsFold(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldContainsFold(FieldIP, v))
}

// UserAgentEQ applies the EQ predicate on the "user_agent" field.
func UserAgentEQ(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldEQ(FieldUserAgent, v))
}

// UserAgentNEQ applies the NEQ predicate on the "user_agent" field.
func UserAgentNEQ(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldNEQ(FieldUserAgent, v))
}

// UserAgentIn applies the In predicate on the "user_agent" field.
func UserAgentIn(vs ...string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldIn(FieldUserAgent, vs...))
}

// UserAgentNotIn applies the NotIn predicate on the "user_agent" field.
func UserAgentNotIn(vs ...string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldNotIn(FieldUserAgent, vs...))
}

// UserAgentGT applies the GT predicate on the "user_agent" field.
func UserAgentGT(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldGT(FieldUserAgent, v))
}

// UserAgentGTE applies the GTE predicate on the "user_agent" field.
func UserAgentGTE(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldGTE(FieldUserAgent, v))
}

// UserAgentLT applies the LT predicate on the "user_agent" field.
func UserAgentLT(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldLT(FieldUserAgent, v))
}

// UserAgentLTE applies the LTE predicate on the "user_agent" field.
func UserAgentLTE(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldLTE(FieldUserAgent, v))
}

// UserAgentContains applies the Contains predicate on the "user_agent" field.
func UserAgentContains(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldContains(FieldUserAgent, v))
}

// UserAgentHasPrefix applies the HasPrefix predicate on the "user_agent" field.
func UserAgentHasPrefix(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldHasPrefix(FieldUserAgent, v))
}

// UserAgentHasSuffix applies the HasSuffix predicate on the "user_agent" field.
func UserAgentHasSuffix(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldHasSuffix(FieldUserAgent, v))
}

// UserAgentIsNil applies the IsNil predicate on the "user_agent" field.
func UserAgentIsNil() predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldIsNull(FieldUserAgent))
}

// UserAgentNotNil applies the NotNil predicate on the "user_agent" field.
func UserAgentNotNil() predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldNotNull(FieldUserAgent))
}

// UserAgentEqualFold applies the EqualFold predicate on the "user_agent" field.
func UserAgentEqualFold(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldEqualFold(FieldUserAgent, v))
}

// UserAgentContainsFold applies the ContainsFold predicate on the "user_agent" field.
func UserAgentContainsFold(v string) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldContainsFold(FieldUserAgent, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.FieldLTE(FieldCreatedAt, v))
}

// HasAPIKey applies the HasEdge predicate on the "api_key" edge.
func HasAPIKey() predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, APIKeyTable, APIKeyColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAPIKeyWith applies the HasEdge predicate on the "api_key" edge with a given conditions (other predicates).
func HasAPIKeyWith(preds ...predicate.ApiKey) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(func(s *sql.Selector) {
		step := newAPIKeyStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ApiKeyUsage) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ApiKeyUsage) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ApiKeyUsage) predicate.ApiKeyUsage {
	return predicate.ApiKeyUsage(sql.NotPredicates(p))
}
