package mq

// Messages are tagged with the decision kind so consumers can filter by
// disposition.
const TopicAudit = "governance_audit"
