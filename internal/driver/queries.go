package driver

var IndexQueries = []string{
	"CREATE INDEX ON :Run(uuid);",
	"CREATE INDEX ON :Subject(name);",
	"CREATE INDEX ON :Link(url);",
}

const (
	SaveRunQuery = `
		MERGE (s:Subject {name: $subject})
		MERGE (r:Run {uuid: $uuid})
		SET r.created_at = $created_at,
			r.organic_count = $organic_count,
			r.link_count = $link_count
		MERGE (s)-[:RESEARCHED_IN]->(r)
		RETURN r.uuid AS uuid
	`

	// Positions keep source order; the same URL may appear more than once.
	SaveRunLinkQuery = `
		MATCH (r:Run {uuid: $run_uuid})
		MERGE (l:Link {url: $url})
		SET l.domain = $domain
		CREATE (r)-[:REFERENCES {position: $position}]->(l)
	`

	GetSubjectLinksQuery = `
		MATCH (:Subject {name: $subject})-[:RESEARCHED_IN]->(:Run)-[ref:REFERENCES]->(l:Link)
		RETURN DISTINCT l.url AS url
		ORDER BY url
	`
)
