// Package travis defines the public API surface of the Travis CI v3 client:
// typed resource models, the generic response envelope decoder, pagination
// metadata and iteration helpers, the link follower, typed errors, query
// options, and the configuration used to build a client.
//
// Create clients with github.com/trvs-io/travis-client/pkg/travisclient:
//
//	client, err := travisclient.New(&travis.Config{
//	    BaseURL: "https://api.travis-ci.com",
//	    Token:   os.Getenv("TRAVIS_TOKEN"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	repos, err := client.Repositories().List(ctx, &travis.RepositoryListOptions{
//	    ListOptions: travis.ListOptions{Limit: 25},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, repo := range travis.Items(repos) {
//	    fmt.Println(repo.Slug)
//	}
//
// Every v3 response is a tagged envelope: a JSON object carrying "@type",
// "@href" and, for collections, "@pagination" alongside the payload. The
// payload is either nested under the key named by "@type" (collections) or
// inlined with the metadata keys (single resources). DecodeEnvelope resolves
// both shapes into an Envelope[T] without a wrapper-type split.
package travis
