package evaluation

import (
	"sort"
	"strings"
)

// ConceptEntry describes one canonical concept in the knowledge base: the
// synonyms and related terms it can be matched through, and its weight
// (1 = minor, 2 = standard, 3 = core) in coverage scoring.
type ConceptEntry struct {
	Synonyms []string
	Related  []string
	Weight   int
}

// adHocWeight is assigned to concepts that come from explicit question
// keywords or ideal-answer extraction but have no knowledge-base entry.
const adHocWeight = 2

// conceptBase is the static concept knowledge base. All terms are stored in
// normalized form because matching runs against normalized text. The map is
// never mutated after package init.
var conceptBase = map[string]ConceptEntry{
	"load balancer": {
		Synonyms: []string{"load balancing", "load-balancing", "load balancers"},
		Related:  []string{"nginx", "haproxy", "reverse proxy", "round robin", "traffic distribution"},
		Weight:   3,
	},
	"caching": {
		Synonyms: []string{"cache", "caches", "cached", "in-memory cache"},
		Related:  []string{"redis", "memcached", "cache invalidation", "ttl", "cache hit"},
		Weight:   3,
	},
	"scalability": {
		Synonyms: []string{"scalable", "scaling", "scale out", "scale up"},
		Related:  []string{"horizontal scaling", "vertical scaling", "elasticity", "capacity planning"},
		Weight:   3,
	},
	"database": {
		Synonyms: []string{"databases", "data store", "datastore"},
		Related:  []string{"sql", "nosql", "postgres", "mysql", "mongodb", "storage layer"},
		Weight:   2,
	},
	"indexing": {
		Synonyms: []string{"index", "indexes", "indices", "indexed"},
		Related:  []string{"b-tree", "query performance", "lookup time", "composite key"},
		Weight:   2,
	},
	"sharding": {
		Synonyms: []string{"shard", "shards", "sharded", "partitioning"},
		Related:  []string{"partition key", "data distribution", "horizontal partitioning"},
		Weight:   2,
	},
	"replication": {
		Synonyms: []string{"replica", "replicas", "replicated", "replicating"},
		Related:  []string{"leader follower", "read replicas", "primary secondary", "failover"},
		Weight:   2,
	},
	"consistency": {
		Synonyms: []string{"consistent", "strong consistency", "eventual consistency"},
		Related:  []string{"cap theorem", "quorum", "linearizability", "stale reads"},
		Weight:   2,
	},
	"availability": {
		Synonyms: []string{"available", "high availability", "highly available"},
		Related:  []string{"uptime", "redundancy", "failover", "sla"},
		Weight:   2,
	},
	"fault tolerance": {
		Synonyms: []string{"fault tolerant", "fault-tolerance", "fault-tolerant"},
		Related:  []string{"resilience", "graceful degradation", "circuit breaker", "retries"},
		Weight:   2,
	},
	"latency": {
		Synonyms: []string{"latencies", "response time", "response times"},
		Related:  []string{"round trip", "p99", "milliseconds", "slow queries"},
		Weight:   2,
	},
	"throughput": {
		Synonyms: []string{"requests per second", "rps", "qps"},
		Related:  []string{"bandwidth", "capacity", "saturation"},
		Weight:   2,
	},
	"message queue": {
		Synonyms: []string{"queue", "queues", "queueing", "message broker"},
		Related:  []string{"kafka", "rabbitmq", "pub sub", "asynchronous processing", "backpressure"},
		Weight:   2,
	},
	"api": {
		Synonyms: []string{"apis", "endpoint", "endpoints"},
		Related:  []string{"rest", "graphql", "grpc", "versioning", "contract"},
		Weight:   2,
	},
	"rest": {
		Synonyms: []string{"restful", "rest api"},
		Related:  []string{"http verbs", "resources", "stateless", "status codes"},
		Weight:   1,
	},
	"authentication": {
		Synonyms: []string{"authenticating", "login", "sign in"},
		Related:  []string{"oauth", "jwt", "tokens", "credentials", "sso"},
		Weight:   2,
	},
	"authorization": {
		Synonyms: []string{"access control", "permissions", "permission checks"},
		Related:  []string{"rbac", "roles", "least privilege", "acl"},
		Weight:   2,
	},
	"encryption": {
		Synonyms: []string{"encrypted", "encrypting", "cryptography"},
		Related:  []string{"tls", "https", "aes", "key rotation", "hashing"},
		Weight:   2,
	},
	"security": {
		Synonyms: []string{"secure", "securing"},
		Related:  []string{"vulnerability", "xss", "sql injection", "csrf", "firewall"},
		Weight:   2,
	},
	"microservices": {
		Synonyms: []string{"microservice", "micro-services", "service oriented"},
		Related:  []string{"monolith", "service mesh", "bounded context", "service boundaries"},
		Weight:   2,
	},
	"monitoring": {
		Synonyms: []string{"observability", "metrics", "monitored"},
		Related:  []string{"alerting", "dashboards", "prometheus", "grafana", "tracing"},
		Weight:   2,
	},
	"logging": {
		Synonyms: []string{"logs", "log aggregation", "structured logging"},
		Related:  []string{"log levels", "audit trail", "correlation id"},
		Weight:   1,
	},
	"testing": {
		Synonyms: []string{"tests", "tested", "unit testing", "test coverage"},
		Related:  []string{"integration tests", "tdd", "mocking", "regression"},
		Weight:   2,
	},
	"deployment": {
		Synonyms: []string{"deploy", "deploying", "deployments", "rollout"},
		Related:  []string{"ci cd", "blue green", "canary", "rollback"},
		Weight:   2,
	},
	"container": {
		Synonyms: []string{"containers", "containerized", "containerization"},
		Related:  []string{"docker", "images", "registry", "orchestration"},
		Weight:   2,
	},
	"kubernetes": {
		Synonyms: []string{"k8s"},
		Related:  []string{"pods", "cluster", "helm", "autoscaling"},
		Weight:   2,
	},
	"concurrency": {
		Synonyms: []string{"concurrent", "parallelism", "parallel"},
		Related:  []string{"threads", "goroutines", "race condition", "locks", "mutex"},
		Weight:   2,
	},
	"rate limiting": {
		Synonyms: []string{"rate limit", "rate limiter", "throttling"},
		Related:  []string{"token bucket", "backoff", "quota"},
		Weight:   2,
	},
	"cdn": {
		Synonyms: []string{"content delivery network", "edge caching"},
		Related:  []string{"edge servers", "static assets", "cloudflare"},
		Weight:   1,
	},
	"dns": {
		Synonyms: []string{"domain name system"},
		Related:  []string{"name resolution", "dns records", "nameserver"},
		Weight:   1,
	},
	"transaction": {
		Synonyms: []string{"transactions", "transactional"},
		Related:  []string{"acid", "atomicity", "isolation", "rollback", "commit"},
		Weight:   2,
	},
	"normalization": {
		Synonyms: []string{"normalized", "normal form"},
		Related:  []string{"denormalization", "schema design", "redundant data"},
		Weight:   1,
	},
	"algorithm": {
		Synonyms: []string{"algorithms", "algorithmic"},
		Related:  []string{"complexity", "optimization", "brute force", "heuristic"},
		Weight:   2,
	},
	"data structure": {
		Synonyms: []string{"data structures"},
		Related:  []string{"array", "linked list", "tree", "graph", "heap"},
		Weight:   2,
	},
	"hash table": {
		Synonyms: []string{"hash map", "hashmap", "hash tables", "dictionary"},
		Related:  []string{"collisions", "buckets", "constant time", "hash function"},
		Weight:   2,
	},
	"complexity": {
		Synonyms: []string{"time complexity", "space complexity", "big o", "big-o"},
		Related:  []string{"logarithmic", "linear time", "quadratic", "amortized"},
		Weight:   2,
	},
	"recursion": {
		Synonyms: []string{"recursive", "recursively"},
		Related:  []string{"base case", "call stack", "divide and conquer"},
		Weight:   1,
	},
	"websocket": {
		Synonyms: []string{"websockets", "web socket", "web sockets"},
		Related:  []string{"real-time", "bidirectional", "persistent connection"},
		Weight:   1,
	},
	"http": {
		Synonyms: []string{"https", "hypertext transfer protocol"},
		Related:  []string{"request response", "headers", "status codes", "tcp"},
		Weight:   1,
	},
	"performance": {
		Synonyms: []string{"performant", "performance optimization"},
		Related:  []string{"profiling", "bottleneck", "tuning", "benchmarks"},
		Weight:   2,
	},
	"idempotency": {
		Synonyms: []string{"idempotent", "idempotence"},
		Related:  []string{"retries", "deduplication", "exactly once"},
		Weight:   1,
	},
	"teamwork": {
		Synonyms: []string{"team work", "collaboration", "collaborating", "collaborated"},
		Related:  []string{"communication", "pair programming", "code review", "cross-functional"},
		Weight:   2,
	},
	"leadership": {
		Synonyms: []string{"leading", "leadership skills"},
		Related:  []string{"mentoring", "ownership", "initiative", "delegation"},
		Weight:   2,
	},
	"conflict resolution": {
		Synonyms: []string{"conflict", "disagreement", "resolving conflict"},
		Related:  []string{"compromise", "mediation", "common ground", "alignment"},
		Weight:   2,
	},
	"prioritization": {
		Synonyms: []string{"prioritize", "prioritizing", "priorities"},
		Related:  []string{"trade-offs", "deadlines", "impact", "urgency"},
		Weight:   1,
	},
	"agile": {
		Synonyms: []string{"scrum", "agile methodology"},
		Related:  []string{"sprint", "standup", "retrospective", "kanban"},
		Weight:   1,
	},
}

// conceptNames holds the knowledge-base keys in sorted order. Matching and
// extraction always iterate this slice, never the map, so results are
// deterministic across runs.
var conceptNames []string

func init() {
	conceptNames = make([]string, 0, len(conceptBase))
	for name := range conceptBase {
		conceptNames = append(conceptNames, name)
	}
	sort.Strings(conceptNames)
}

// lookupConcept resolves a normalized term to its canonical knowledge-base
// concept. The term may be the canonical name itself or any listed synonym.
func lookupConcept(term string) (string, ConceptEntry, bool) {
	if entry, ok := conceptBase[term]; ok {
		return term, entry, true
	}
	for _, name := range conceptNames {
		entry := conceptBase[name]
		for _, syn := range entry.Synonyms {
			if syn == term {
				return name, entry, true
			}
		}
	}
	return "", ConceptEntry{}, false
}

// conceptInText reports whether a concept is present in normalized text via
// its canonical name or any synonym, and returns the surface form and tier of
// the first form found. Related terms and fuzzy matching are deliberately not
// consulted here; presence checks for extraction and bonuses require a direct
// mention.
func conceptInText(norm, name string, entry ConceptEntry) (string, Confidence, bool) {
	if strings.Contains(norm, name) {
		return name, ConfidenceExact, true
	}
	for _, syn := range entry.Synonyms {
		if strings.Contains(norm, syn) {
			return syn, ConfidenceSynonym, true
		}
	}
	return "", "", false
}
