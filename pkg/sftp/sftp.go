package sftp

import (
	"fmt"
	"net"
	"os"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
)

var (
	SIZE = 1 << 15
)

// SFTP contains the ssh connection and the sftp client object
type SFTP struct {
	isOpen     bool
	sshClient  *ssh.Client
	sftpClient *sftp.Client
}

// NewSession initializes an SFTP session object
func NewSession(host, user, password string, port int) (*SFTP, error) {
	var session SFTP
	var err error

	var auths []ssh.AuthMethod
	if aconn, err := net.Dial("unix", os.Getenv("SSH_AUTH_SOCK")); err == nil {
		auths = append(auths, ssh.PublicKeysCallback(agent.NewClient(aconn).Signers))
	}
	if password != "" {
		auths = append(auths, ssh.Password(password))
	}

	config := ssh.ClientConfig{
		User:            user,
		Auth:            auths,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	}
	addr := fmt.Sprintf("%s:%d", host, port)
	session.sshClient, err = ssh.Dial("tcp", addr, &config)
	if err != nil {
		return &session, err
	}

	// open an SFTP session over an existing ssh connection.
	session.sftpClient, err = sftp.NewClient(session.sshClient, sftp.MaxPacket(SIZE))
	if err != nil {
		return &session, err
	}

	session.isOpen = true

	return &session, nil
}

// Upload writes payload to the remote path, replacing any previous version
func (s *SFTP) Upload(path string, payload []byte) error {
	if !s.isOpen {
		return fmt.Errorf("Failed to upload %s - Session not initialized", path)
	}

	f, err := s.sftpClient.Create(path)
	if err != nil {
		return fmt.Errorf("Create remote file - %w", err)
	}
	defer f.Close()

	_, err = f.Write(payload)
	if err != nil {
		return fmt.Errorf("Write remote file - %w", err)
	}

	return nil
}

// Remove removes the object specified in path
func (s *SFTP) Remove(path string) error {
	err := s.sftpClient.Remove(path)
	return err
}

// Close closes the ssh and sftp connections
func (s *SFTP) Close() {
	s.sftpClient.Close()
	s.sshClient.Close()

	s.isOpen = false
}
